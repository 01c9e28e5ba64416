package domain

// Sensor describes one channel of a recording.
type Sensor struct {
	// Name is the channel label (e.g., "accX")
	Name string

	// Units is the physical unit reported by the device, if any
	Units string
}

// Recording is one input/output unit.
// Every row of Values has exactly len(Sensors) elements.
type Recording struct {
	// Sensors lists the channels in column order
	Sensors []Sensor

	// IntervalMs is the sampling interval in milliseconds
	IntervalMs float64

	// Values is the sample grid: outer index is time, inner index is channel
	Values [][]float64
}

// SampleCount returns the number of time steps.
func (r Recording) SampleCount() int {
	return len(r.Values)
}

// ChannelCount returns the number of channels.
// It prefers the sensor list and falls back to the width of the first row.
func (r Recording) ChannelCount() int {
	if len(r.Sensors) > 0 {
		return len(r.Sensors)
	}
	if len(r.Values) > 0 {
		return len(r.Values[0])
	}
	return 0
}

// SensorNames returns the channel names in column order.
func (r Recording) SensorNames() []string {
	names := make([]string, len(r.Sensors))
	for i, s := range r.Sensors {
		names[i] = s.Name
	}
	return names
}

// WithValues returns a copy of the recording whose sample grid is replaced.
// Sensors are shared with the receiver.
func (r Recording) WithValues(values [][]float64) Recording {
	r.Values = values
	return r
}

// Validate checks the grid invariants against the sensor list.
func (r Recording) Validate() error {
	return ValidateGrid(r.Values, len(r.Sensors))
}

// ValidateGrid checks that values is non-empty and rectangular.
// When channels is positive every row must have exactly that many readings,
// otherwise rows must match the first row's width.
func ValidateGrid(values [][]float64, channels int) error {
	if len(values) == 0 {
		return &ShapeError{Row: -1, Reason: "no samples"}
	}
	want := channels
	if want <= 0 {
		want = len(values[0])
	}
	if want == 0 {
		return &ShapeError{Row: 0, Reason: "no channels"}
	}
	for i, row := range values {
		if len(row) != want {
			return &ShapeError{Row: i, Want: want, Got: len(row), Reason: "ragged row"}
		}
	}
	return nil
}
