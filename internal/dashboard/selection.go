package dashboard

import (
	"errors"
	"fmt"
	"math"

	"github.com/nakulbh/tweetdash/internal/tweets"
)

// DefaultPageSize is the number of rows per table page.
const DefaultPageSize = 10

// Selection mirrors plotly's selectedData payload. Only customdata is read.
type Selection struct {
	Points []SelectedPoint `json:"points"`
}

type SelectedPoint struct {
	CustomData []float64 `json:"customdata"`
}

var ErrInvalidPoint = errors.New("selected point has no integer index in customdata")

// Indices returns the dataset index carried by each selected point, in
// selection order. A nil Selection yields no indices.
func (s *Selection) Indices() ([]int, error) {
	if s == nil {
		return nil, nil
	}
	indices := make([]int, 0, len(s.Points))
	for i, p := range s.Points {
		if len(p.CustomData) == 0 {
			return nil, fmt.Errorf("point %d: %w", i, ErrInvalidPoint)
		}
		v := p.CustomData[0]
		if v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
			return nil, fmt.Errorf("point %d: %w", i, ErrInvalidPoint)
		}
		indices = append(indices, int(v))
	}
	return indices, nil
}

// Row is one line of the tweet table.
type Row struct {
	Tweet string `json:"tweet"`
}

// SelectTweets returns the raw text of the tweets at indices, in the given
// order with duplicates kept. Indices outside the dataset are skipped; the
// HTTP layer rejects them before they get here.
func SelectTweets(ds *tweets.Dataset, indices []int) []Row {
	rows := make([]Row, 0, len(indices))
	for _, i := range indices {
		if t, ok := ds.Tweet(i); ok {
			rows = append(rows, Row{Tweet: t.RawTweet})
		}
	}
	return rows
}

// Page is one page of table rows.
type Page struct {
	Rows      []Row `json:"rows"`
	Page      int   `json:"page"`
	PageSize  int   `json:"pageSize"`
	PageCount int   `json:"pageCount"`
	Total     int   `json:"total"`
}

// Paginate slices rows into the zero-based page of the given size. Pages past
// the end are empty; a non-positive size uses DefaultPageSize.
func Paginate(rows []Row, page, size int) Page {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 0 {
		page = 0
	}

	p := Page{
		Rows:      []Row{},
		Page:      page,
		PageSize:  size,
		PageCount: (len(rows) + size - 1) / size,
		Total:     len(rows),
	}

	start := page * size
	if start >= len(rows) {
		return p
	}
	end := min(start+size, len(rows))
	p.Rows = rows[start:end]
	return p
}
