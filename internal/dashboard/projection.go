package dashboard

import "github.com/nakulbh/tweetdash/internal/tweets"

// Figure is a plotly figure description. The web UI hands it straight to
// Plotly.react, and selections come back carrying each point's customdata.
type Figure struct {
	Data   []Trace        `json:"data"`
	Layout Layout         `json:"layout"`
	Config map[string]any `json:"config"`
}

type Trace struct {
	Type          string    `json:"type"`
	Mode          string    `json:"mode"`
	X             []float64 `json:"x"`
	Y             []float64 `json:"y"`
	CustomData    [][]int   `json:"customdata"`
	Text          []string  `json:"text"`
	HoverInfo     string    `json:"hoverinfo"`
	HoverTemplate string    `json:"hovertemplate"`
	Marker        Marker    `json:"marker"`
}

type Marker struct {
	Color string `json:"color"`
	Size  int    `json:"size"`
}

type Layout struct {
	Title      Title      `json:"title"`
	XAxis      Axis       `json:"xaxis"`
	YAxis      Axis       `json:"yaxis"`
	ModeBar    ModeBar    `json:"modebar"`
	HoverLabel HoverLabel `json:"hoverlabel"`
	DragMode   string     `json:"dragmode"`
}

type Title struct {
	Text string `json:"text"`
}

type Axis struct {
	Title Title `json:"title"`
}

type ModeBar struct {
	Orientation string `json:"orientation"`
}

type HoverLabel struct {
	BgColor string `json:"bgcolor"`
	Font    Font   `json:"font"`
}

type Font struct {
	Size   int    `json:"size"`
	Family string `json:"family"`
}

const (
	markerColor = "blue"
	markerSize  = 10
)

// Project maps filtered tweets onto a single-trace scatter figure. Point i
// carries [points[i].Index] as customdata so a selection can be joined back
// to the dataset.
func Project(points []tweets.Tweet) Figure {
	trace := Trace{
		Type:          "scatter",
		Mode:          "markers",
		X:             make([]float64, len(points)),
		Y:             make([]float64, len(points)),
		CustomData:    make([][]int, len(points)),
		Text:          make([]string, len(points)),
		HoverInfo:     "text",
		HoverTemplate: "%{text}<extra></extra>",
		Marker:        Marker{Color: markerColor, Size: markerSize},
	}
	for i, t := range points {
		trace.X[i] = t.Dim1
		trace.Y[i] = t.Dim2
		trace.CustomData[i] = []int{t.Index}
		trace.Text[i] = t.RawTweet
	}

	return Figure{
		Data: []Trace{trace},
		Layout: Layout{
			ModeBar: ModeBar{Orientation: "v"},
			HoverLabel: HoverLabel{
				BgColor: "white",
				Font:    Font{Size: 12, Family: "Rockwell"},
			},
			DragMode: "lasso",
		},
		Config: map[string]any{
			"modeBarButtonsToAdd": []string{"lasso2d"},
		},
	}
}
