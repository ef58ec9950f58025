package dashboard

import (
	"fmt"
	"io"

	"github.com/nakulbh/tweetdash/internal/tweets"
	chart "github.com/wcharczuk/go-chart/v2"
)

type ImageFormat string

const (
	FormatSVG ImageFormat = "svg"
	FormatPNG ImageFormat = "png"
)

func (f ImageFormat) ContentType() string {
	if f == FormatPNG {
		return "image/png"
	}
	return "image/svg+xml"
}

// ChartOptions sizes a rendered projection. Zero values fall back to 800x600.
type ChartOptions struct {
	Width  int
	Height int
	Format ImageFormat
}

const (
	defaultChartWidth  = 800
	defaultChartHeight = 600
)

// RenderChart draws the projection of points as a static image. Axes are
// fixed to the dataset-wide bounds x and y so that successive filters share
// a frame and empty or single-point results still render.
func RenderChart(w io.Writer, points []tweets.Tweet, x, y tweets.Bounds, opts ChartOptions) error {
	xr := padded(x)
	yr := padded(y)

	// go-chart rejects empty series, so an invisible frame spanning the axes
	// is always present.
	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    "frame",
			Style:   chart.Style{StrokeWidth: chart.Disabled, DotWidth: 0},
			XValues: []float64{xr.Min, xr.Max},
			YValues: []float64{yr.Min, yr.Max},
		},
	}
	if len(points) > 0 {
		xs := make([]float64, len(points))
		ys := make([]float64, len(points))
		for i, t := range points {
			xs[i] = t.Dim1
			ys[i] = t.Dim2
		}
		series = append(series, chart.ContinuousSeries{
			Name: "tweets",
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidth:    5,
				DotColor:    chart.ColorBlue,
			},
			XValues: xs,
			YValues: ys,
		})
	}

	graph := chart.Chart{
		Width:  opts.Width,
		Height: opts.Height,
		XAxis:  chart.XAxis{Range: &chart.ContinuousRange{Min: xr.Min, Max: xr.Max}},
		YAxis:  chart.YAxis{Range: &chart.ContinuousRange{Min: yr.Min, Max: yr.Max}},
		Series: series,
	}
	if graph.Width <= 0 {
		graph.Width = defaultChartWidth
	}
	if graph.Height <= 0 {
		graph.Height = defaultChartHeight
	}

	provider := chart.SVG
	if opts.Format == FormatPNG {
		provider = chart.PNG
	}
	if err := graph.Render(provider, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

// padded widens b by 5% on each side, and by 0.5 when b is a single value.
func padded(b tweets.Bounds) Range {
	span := b.Max - b.Min
	if span <= 0 {
		return Range{Min: b.Min - 0.5, Max: b.Max + 0.5}
	}
	return Range{Min: b.Min - span*0.05, Max: b.Max + span*0.05}
}
