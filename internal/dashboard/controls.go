package dashboard

import (
	"math"
	"strconv"

	"github.com/nakulbh/tweetdash/internal/tweets"
)

// SliderStep matches the granularity of the score columns.
const SliderStep = 0.1

type MonthOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Count int    `json:"count"`
}

type Mark struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

type Slider struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Step  float64 `json:"step"`
	Marks []Mark  `json:"marks"`
	Value Range   `json:"value"`
}

// Controls describes the dashboard's input widgets and their initial state.
type Controls struct {
	Months       []MonthOption `json:"months"`
	Month        string        `json:"month"`
	Sentiment    Slider        `json:"sentiment"`
	Subjectivity Slider        `json:"subjectivity"`
	PageSize     int           `json:"pageSize"`
}

func NewControls(ds *tweets.Dataset) Controls {
	months := ds.Months()
	options := make([]MonthOption, len(months))
	for i, m := range months {
		options[i] = MonthOption{Label: m, Value: m, Count: ds.MonthCount(m)}
	}

	defaults := DefaultCriteria(ds)
	return Controls{
		Months:       options,
		Month:        defaults.Month,
		Sentiment:    newSlider(ds.SentimentBounds()),
		Subjectivity: newSlider(ds.SubjectivityBounds()),
		PageSize:     DefaultPageSize,
	}
}

// newSlider spans b, labelling every integer between floor(min) and ceil(max).
func newSlider(b tweets.Bounds) Slider {
	var marks []Mark
	for i := math.Floor(b.Min); i <= math.Ceil(b.Max); i++ {
		marks = append(marks, Mark{Value: i, Label: strconv.Itoa(int(i))})
	}
	return Slider{
		Min:   b.Min,
		Max:   b.Max,
		Step:  SliderStep,
		Marks: marks,
		Value: RangeOf(b),
	}
}
