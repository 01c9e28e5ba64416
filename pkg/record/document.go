package record

import (
	"fmt"
	"maps"

	"github.com/bft-labs/sigcrop/internal/domain"
)

// Keys of the recording mapping.
const (
	KeyPayload    = "payload"
	KeyValues     = "values"
	KeySensors    = "sensors"
	KeyIntervalMs = "interval_ms"
	KeyName       = "name"
	KeyUnits      = "units"
)

// Document is a decoded recording file.
// It keeps the original mapping so that re-encoding only changes
// payload.values, with row elements re-emitted as they were decoded.
type Document struct {
	root    map[string]any
	payload map[string]any
	rows    []any

	// Recording is the numeric view of the payload.
	Recording domain.Recording
}

// NewDocument interprets a decoded mapping as a recording.
// Structural problems (missing or mistyped keys) wrap domain.ErrDecode;
// grid problems (ragged rows, non-numeric readings) are *domain.ShapeError.
func NewDocument(root map[string]any) (*Document, error) {
	payload, ok := root[KeyPayload].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: missing or invalid %q", domain.ErrDecode, KeyPayload)
	}

	rows, ok := payload[KeyValues].([]any)
	if !ok {
		return nil, fmt.Errorf("%w: missing or invalid %s.%s", domain.ErrDecode, KeyPayload, KeyValues)
	}

	sensors, err := parseSensors(payload[KeySensors])
	if err != nil {
		return nil, err
	}

	interval, ok := toFloat(payload[KeyIntervalMs])
	if !ok {
		return nil, fmt.Errorf("%w: missing or invalid %s.%s", domain.ErrDecode, KeyPayload, KeyIntervalMs)
	}

	values, err := parseValues(rows)
	if err != nil {
		return nil, err
	}

	return &Document{
		root:    root,
		payload: payload,
		rows:    rows,
		Recording: domain.Recording{
			Sensors:    sensors,
			IntervalMs: interval,
			Values:     values,
		},
	}, nil
}

// Root returns the mapping to encode.
func (d *Document) Root() map[string]any {
	return d.root
}

// WithWindow returns a document whose payload.values is replaced by the rows
// inside w. The receiver is not modified; all other entries are shared.
func (d *Document) WithWindow(w domain.Window) *Document {
	w = w.Clamp(len(d.rows))
	rows := d.rows[w.Left:w.Right:w.Right]

	payload := maps.Clone(d.payload)
	payload[KeyValues] = rows
	root := maps.Clone(d.root)
	root[KeyPayload] = payload

	values := d.Recording.Values
	if len(values) == len(d.rows) {
		values = values[w.Left:w.Right:w.Right]
	}

	return &Document{
		root:      root,
		payload:   payload,
		rows:      rows,
		Recording: d.Recording.WithValues(values),
	}
}

func parseSensors(v any) ([]domain.Sensor, error) {
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: missing or invalid %s.%s", domain.ErrDecode, KeyPayload, KeySensors)
	}
	sensors := make([]domain.Sensor, len(list))
	for i, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: sensor %d is not a mapping", domain.ErrDecode, i)
		}
		name, ok := m[KeyName].(string)
		if !ok {
			return nil, fmt.Errorf("%w: sensor %d has no %q", domain.ErrDecode, i, KeyName)
		}
		units, _ := m[KeyUnits].(string)
		sensors[i] = domain.Sensor{Name: name, Units: units}
	}
	return sensors, nil
}

func parseValues(rows []any) ([][]float64, error) {
	values := make([][]float64, len(rows))
	for i, r := range rows {
		row, ok := r.([]any)
		if !ok {
			// Single-axis recordings may store bare numbers per sample.
			f, ok := toFloat(r)
			if !ok {
				return nil, &domain.ShapeError{Row: i, Reason: "non-numeric sample"}
			}
			values[i] = []float64{f}
			continue
		}
		values[i] = make([]float64, len(row))
		for j, c := range row {
			f, ok := toFloat(c)
			if !ok {
				return nil, &domain.ShapeError{Row: i, Col: j, Reason: "non-numeric reading"}
			}
			values[i][j] = f
		}
	}
	return values, nil
}

// toFloat converts any decoded numeric value to float64.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
