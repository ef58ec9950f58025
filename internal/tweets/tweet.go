package tweets

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	ErrEmptyDataset  = errors.New("dataset has no rows")
	ErrMissingColumn = errors.New("missing required column")
	ErrMalformedRow  = errors.New("malformed row")
)

// Tweet is one row of the dataset. Index is the row's zero-based position in
// the source file and is the only identity used to join a plotted point back
// to its text.
type Tweet struct {
	Index        int     `json:"index"`
	RawTweet     string  `json:"rawTweet"`
	Month        string  `json:"month"`
	Sentiment    float64 `json:"sentiment"`
	Subjectivity float64 `json:"subjectivity"`
	Dim1         float64 `json:"dimension1"`
	Dim2         float64 `json:"dimension2"`
}

// Bounds is a closed numeric interval observed over one column.
type Bounds struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (b Bounds) extend(v float64) Bounds {
	return Bounds{Min: math.Min(b.Min, v), Max: math.Max(b.Max, v)}
}

// Dataset is the immutable in-memory tweet table. It is built once at
// startup and is safe for concurrent readers.
type Dataset struct {
	source       string
	loadedAt     time.Time
	tweets       []Tweet
	months       []string
	monthCounts  map[string]int
	sentiment    Bounds
	subjectivity Bounds
	dim1         Bounds
	dim2         Bounds
}

// NewDataset builds a Dataset from rows whose Index equals their position.
func NewDataset(source string, rows []Tweet) (*Dataset, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", source, ErrEmptyDataset)
	}

	ds := &Dataset{
		source:      source,
		loadedAt:    time.Now(),
		tweets:      make([]Tweet, len(rows)),
		monthCounts: make(map[string]int),
	}
	copy(ds.tweets, rows)

	first := rows[0]
	ds.sentiment = Bounds{first.Sentiment, first.Sentiment}
	ds.subjectivity = Bounds{first.Subjectivity, first.Subjectivity}
	ds.dim1 = Bounds{first.Dim1, first.Dim1}
	ds.dim2 = Bounds{first.Dim2, first.Dim2}

	for i, t := range ds.tweets {
		if t.Index != i {
			return nil, fmt.Errorf("%s: row %d has index %d: %w", source, i, t.Index, ErrMalformedRow)
		}
		if _, seen := ds.monthCounts[t.Month]; !seen {
			ds.months = append(ds.months, t.Month)
		}
		ds.monthCounts[t.Month]++
		ds.sentiment = ds.sentiment.extend(t.Sentiment)
		ds.subjectivity = ds.subjectivity.extend(t.Subjectivity)
		ds.dim1 = ds.dim1.extend(t.Dim1)
		ds.dim2 = ds.dim2.extend(t.Dim2)
	}

	return ds, nil
}

func (d *Dataset) Source() string      { return d.source }
func (d *Dataset) LoadedAt() time.Time { return d.loadedAt }
func (d *Dataset) Len() int            { return len(d.tweets) }

// Tweets returns every row in file order. Callers must not modify the slice.
func (d *Dataset) Tweets() []Tweet {
	return d.tweets
}

// Tweet returns the row at index, if it exists.
func (d *Dataset) Tweet(index int) (Tweet, bool) {
	if index < 0 || index >= len(d.tweets) {
		return Tweet{}, false
	}
	return d.tweets[index], true
}

// Months returns the distinct month labels in order of first appearance.
func (d *Dataset) Months() []string {
	out := make([]string, len(d.months))
	copy(out, d.months)
	return out
}

func (d *Dataset) MonthCount(month string) int {
	return d.monthCounts[month]
}

func (d *Dataset) SentimentBounds() Bounds    { return d.sentiment }
func (d *Dataset) SubjectivityBounds() Bounds { return d.subjectivity }

// ProjectionBounds returns the extent of the two projection columns.
func (d *Dataset) ProjectionBounds() (x, y Bounds) {
	return d.dim1, d.dim2
}
