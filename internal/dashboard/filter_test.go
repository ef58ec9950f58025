package dashboard

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nakulbh/tweetdash/internal/tweets"
	"github.com/stretchr/testify/assert"
)

func TestRangeContains(t *testing.T) {
	r := Range{Min: -0.5, Max: 0.5}
	assert.True(t, r.Contains(-0.5), "lower bound is inclusive")
	assert.True(t, r.Contains(0.5), "upper bound is inclusive")
	assert.True(t, r.Contains(0))
	assert.False(t, r.Contains(0.51))

	inverted := Range{Min: 1, Max: -1}
	assert.False(t, inverted.Contains(0))
}

func TestDefaultCriteria(t *testing.T) {
	ds := loadTestDataset(t)

	c := DefaultCriteria(ds)
	assert.Equal(t, Criteria{
		Month:        "January",
		Sentiment:    Range{Min: -1.0, Max: 0.9},
		Subjectivity: Range{Min: 0.0, Max: 1.0},
	}, c)

	assert.Equal(t, []int{0, 1, 3, 6, 9}, indicesOf(Filter(ds, c)))
}

func TestFilter(t *testing.T) {
	ds := loadTestDataset(t)

	tests := []struct {
		name     string
		criteria Criteria
		want     []int
	}{
		{
			name:     "month only",
			criteria: Criteria{Month: "February", Sentiment: Range{-1, 1}, Subjectivity: Range{0, 1}},
			want:     []int{2, 5, 8},
		},
		{
			name:     "sentiment narrows",
			criteria: Criteria{Month: "January", Sentiment: Range{0, 1}, Subjectivity: Range{0, 1}},
			want:     []int{0, 3, 9},
		},
		{
			name:     "inclusive bounds on both sliders",
			criteria: Criteria{Month: "January", Sentiment: Range{-0.3, 0.5}, Subjectivity: Range{0.1, 0.6}},
			want:     []int{0, 1, 9},
		},
		{
			name:     "unknown month",
			criteria: Criteria{Month: "December", Sentiment: Range{-1, 1}, Subjectivity: Range{0, 1}},
			want:     []int{},
		},
		{
			name:     "month match is case sensitive",
			criteria: Criteria{Month: "january", Sentiment: Range{-1, 1}, Subjectivity: Range{0, 1}},
			want:     []int{},
		},
		{
			name:     "inverted range",
			criteria: Criteria{Month: "January", Sentiment: Range{1, -1}, Subjectivity: Range{0, 1}},
			want:     []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(ds, tt.criteria)
			assert.NotNil(t, got)
			if diff := cmp.Diff(tt.want, indicesOf(got)); diff != "" {
				t.Errorf("Filter() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// Every filtered tweet is a dataset member satisfying all three predicates,
// and every dataset member satisfying them is returned.
func TestFilterProperties(t *testing.T) {
	ds := loadTestDataset(t)
	rng := rand.New(rand.NewSource(7))
	months := append(ds.Months(), "Nowhere")

	for i := 0; i < 500; i++ {
		c := Criteria{
			Month:        months[rng.Intn(len(months))],
			Sentiment:    randomRange(rng, -1.2, 1.2),
			Subjectivity: randomRange(rng, -0.2, 1.2),
		}

		got := Filter(ds, c)
		inResult := make(map[int]bool, len(got))
		for _, tw := range got {
			member, ok := ds.Tweet(tw.Index)
			assert.True(t, ok)
			assert.Equal(t, member, tw)
			assert.Equal(t, c.Month, tw.Month)
			assert.True(t, c.Sentiment.Contains(tw.Sentiment))
			assert.True(t, c.Subjectivity.Contains(tw.Subjectivity))
			inResult[tw.Index] = true
		}
		for _, tw := range ds.Tweets() {
			assert.Equal(t, c.Matches(tw), inResult[tw.Index])
		}
		assert.LessOrEqual(t, len(got), ds.Len())
	}
}

func randomRange(rng *rand.Rand, lo, hi float64) Range {
	a := lo + rng.Float64()*(hi-lo)
	b := lo + rng.Float64()*(hi-lo)
	if a > b {
		a, b = b, a
	}
	return Range{Min: a, Max: b}
}

func TestRangeOf(t *testing.T) {
	assert.Equal(t, Range{Min: -2, Max: 3}, RangeOf(tweets.Bounds{Min: -2, Max: 3}))
}
