package dashboard

import "github.com/nakulbh/tweetdash/internal/tweets"

// Range is an inclusive numeric interval. A Range with Min > Max contains nothing.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r Range) Contains(v float64) bool {
	return r.Min <= v && v <= r.Max
}

// RangeOf returns the Range covering b.
func RangeOf(b tweets.Bounds) Range {
	return Range{Min: b.Min, Max: b.Max}
}

// Criteria selects the tweets shown on the scatter plot.
type Criteria struct {
	Month        string `json:"month"`
	Sentiment    Range  `json:"sentiment"`
	Subjectivity Range  `json:"subjectivity"`
}

// DefaultCriteria is the dashboard's initial state: the first month in the
// dataset and both sliders spanning their full column range.
func DefaultCriteria(ds *tweets.Dataset) Criteria {
	c := Criteria{
		Sentiment:    RangeOf(ds.SentimentBounds()),
		Subjectivity: RangeOf(ds.SubjectivityBounds()),
	}
	if months := ds.Months(); len(months) > 0 {
		c.Month = months[0]
	}
	return c
}

// Matches reports whether t satisfies all three predicates.
func (c Criteria) Matches(t tweets.Tweet) bool {
	return t.Month == c.Month &&
		c.Sentiment.Contains(t.Sentiment) &&
		c.Subjectivity.Contains(t.Subjectivity)
}

// Filter returns the tweets matching c in dataset order. The result is never
// nil, so an empty match encodes as an empty JSON array.
func Filter(ds *tweets.Dataset, c Criteria) []tweets.Tweet {
	out := make([]tweets.Tweet, 0)
	for _, t := range ds.Tweets() {
		if c.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}
