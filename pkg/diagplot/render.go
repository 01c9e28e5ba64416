package diagplot

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Defaults match the command-line defaults: a 20x20 inch figure at 100 dpi.
const (
	DefaultWidthInches  = 20
	DefaultHeightInches = 20
	DefaultDPI          = 100
)

var (
	colorLeftTrigger  = color.RGBA{G: 128, A: 255}
	colorRightTrigger = color.RGBA{A: 255}
	colorLeftGuard    = color.RGBA{R: 191, B: 191, A: 255}
	colorRightGuard   = color.RGBA{R: 191, G: 191, A: 255}
	colorThreshold    = color.RGBA{R: 255, A: 255}

	dashes = []vg.Length{vg.Points(6), vg.Points(4)}
)

// Renderer draws Figures as PNG images.
type Renderer struct {
	width  vg.Length
	height vg.Length
	dpi    int
}

// NewRenderer creates a renderer for a width x height inch image.
// Non-positive values fall back to the defaults.
func NewRenderer(widthInches, heightInches float64, dpi int) *Renderer {
	if widthInches <= 0 {
		widthInches = DefaultWidthInches
	}
	if heightInches <= 0 {
		heightInches = DefaultHeightInches
	}
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	return &Renderer{
		width:  vg.Length(widthInches) * vg.Inch,
		height: vg.Length(heightInches) * vg.Inch,
		dpi:    dpi,
	}
}

// Suffix is the file suffix of the images written by Render.
func (r *Renderer) Suffix() string {
	return ".png"
}

// Render writes fig to w as a PNG.
func (r *Renderer) Render(w io.Writer, fig Figure) error {
	input, err := inputPanel(fig)
	if err != nil {
		return fmt.Errorf("input panel: %w", err)
	}
	gradient, err := gradientPanel(fig)
	if err != nil {
		return fmt.Errorf("gradient panel: %w", err)
	}
	output, err := outputPanel(fig)
	if err != nil {
		return fmt.Errorf("output panel: %w", err)
	}

	plots := [][]*plot.Plot{{input}, {gradient}, {output}}
	img := vgimg.NewWith(vgimg.UseWH(r.width, r.height), vgimg.UseDPI(r.dpi))
	dc := draw.New(img)

	tiles := draw.Tiles{
		Rows:      3,
		Cols:      1,
		PadTop:    vg.Points(10),
		PadBottom: vg.Points(10),
		PadLeft:   vg.Points(10),
		PadRight:  vg.Points(10),
		PadY:      vg.Points(20),
	}
	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}

	_, err = vgimg.PngCanvas{Canvas: img}.WriteTo(w)
	return err
}

func inputPanel(fig Figure) (*plot.Plot, error) {
	p := newPanel("Input", fig, "Data magnitude")
	if fig.Title != "" {
		p.Title.Text = fig.Title + "\nInput"
	}
	lo, hi := gridRange(fig.Raw)
	if err := addChannels(p, fig.Raw, fig.ChannelNames, fig.IntervalMs); err != nil {
		return nil, err
	}
	if err := addMarkers(p, fig, lo, hi); err != nil {
		return nil, err
	}
	setLimits(p, len(fig.Raw), fig.IntervalMs, lo, hi)
	return p, nil
}

func gradientPanel(fig Figure) (*plot.Plot, error) {
	p := newPanel("Gradient", fig, "Gradient absolute magnitude")
	lo, hi := seriesRange(fig.Gradient)
	lo, hi = math.Min(lo, fig.Threshold), math.Max(hi, fig.Threshold)

	pts := make(plotter.XYs, len(fig.Gradient))
	for i, g := range fig.Gradient {
		pts[i].X = xAt(i, fig.IntervalMs)
		pts[i].Y = g
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Color = plotutil.Color(0)
	p.Add(line)
	p.Legend.Add("Gradient", line)

	xmax := xAt(max(len(fig.Gradient), 1), fig.IntervalMs)
	level, err := segment(0, fig.Threshold, xmax, fig.Threshold, colorThreshold)
	if err != nil {
		return nil, err
	}
	p.Add(level)
	p.Legend.Add("Trigger level", level)

	if err := addMarkers(p, fig, lo, hi); err != nil {
		return nil, err
	}
	setLimits(p, len(fig.Gradient), fig.IntervalMs, lo, hi)
	return p, nil
}

func outputPanel(fig Figure) (*plot.Plot, error) {
	p := newPanel("Output", fig, "Data magnitude")
	lo, hi := gridRange(fig.Cropped)
	if len(fig.Cropped) == 0 {
		p.Title.Text = "Output (empty)"
	}
	if err := addChannels(p, fig.Cropped, fig.ChannelNames, fig.IntervalMs); err != nil {
		return nil, err
	}
	setLimits(p, len(fig.Cropped), fig.IntervalMs, lo, hi)
	return p, nil
}

func newPanel(title string, fig Figure, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = ylabel
	if fig.IntervalMs > 0 {
		p.X.Label.Text = "Time [ms]"
	} else {
		p.X.Label.Text = "Sample"
	}
	p.Legend.Top = true
	p.Add(plotter.NewGrid())
	return p
}

func addChannels(p *plot.Plot, grid [][]float64, names []string, interval float64) error {
	if len(grid) == 0 {
		return nil
	}
	for c := 0; c < len(grid[0]); c++ {
		pts := make(plotter.XYs, len(grid))
		for i, row := range grid {
			pts[i].X = xAt(i, interval)
			pts[i].Y = row[c]
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.LineStyle.Color = plotutil.Color(c)
		p.Add(line)

		name := fmt.Sprintf("ch%d", c)
		if c < len(names) && names[c] != "" {
			name = names[c]
		}
		p.Legend.Add(name, line)
	}
	return nil
}

func addMarkers(p *plot.Plot, fig Figure, lo, hi float64) error {
	markers := []struct {
		label string
		index int
		color color.Color
	}{
		{"Left trigger", fig.Bounds.LeftTrigger, colorLeftTrigger},
		{"Right trigger", fig.Bounds.RightTrigger, colorRightTrigger},
		{"Left guard", fig.Bounds.LeftGuard, colorLeftGuard},
		{"Right guard", fig.Bounds.RightGuard, colorRightGuard},
	}
	for _, m := range markers {
		x := xAt(m.index, fig.IntervalMs)
		line, err := segment(x, lo, x, hi, m.color)
		if err != nil {
			return err
		}
		p.Add(line)
		p.Legend.Add(m.label, line)
	}
	return nil
}

func segment(x0, y0, x1, y1 float64, c color.Color) (*plotter.Line, error) {
	line, err := plotter.NewLine(plotter.XYs{{X: x0, Y: y0}, {X: x1, Y: y1}})
	if err != nil {
		return nil, err
	}
	line.LineStyle.Color = c
	line.LineStyle.Dashes = dashes
	return line, nil
}

func setLimits(p *plot.Plot, n int, interval, lo, hi float64) {
	p.X.Min = 0
	p.X.Max = xAt(max(n, 1), interval)
	if lo == hi {
		lo, hi = lo-1, hi+1
	}
	p.Y.Min = lo
	p.Y.Max = hi
}

func xAt(i int, interval float64) float64 {
	if interval > 0 {
		return float64(i) * interval
	}
	return float64(i)
}

func gridRange(grid [][]float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, row := range grid {
		for _, v := range row {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if lo > hi {
		return 0, 0
	}
	return lo, hi
}

func seriesRange(s []float64) (float64, float64) {
	return gridRange([][]float64{s})
}
