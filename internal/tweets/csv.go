package tweets

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Column names expected in the dataset header.
const (
	ColumnMonth        = "Month"
	ColumnSentiment    = "Sentiment"
	ColumnSubjectivity = "Subjectivity"
	ColumnDimension1   = "Dimension 1"
	ColumnDimension2   = "Dimension 2"
	ColumnRawTweet     = "RawTweet"
)

var requiredColumns = []string{
	ColumnMonth,
	ColumnSentiment,
	ColumnSubjectivity,
	ColumnDimension1,
	ColumnDimension2,
	ColumnRawTweet,
}

// ParseCSV reads a dataset from r. Columns are located by header name, so
// column order is free and extra columns (such as a leading pandas index)
// are ignored.
func ParseCSV(r io.Reader) ([]Tweet, error) {
	reader := csv.NewReader(r)
	reader.ReuseRecord = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyDataset
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		columns[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}

	var rows []Tweet
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedRow, err)
		}

		index := len(rows)
		t := Tweet{
			Index:    index,
			RawTweet: record[columns[ColumnRawTweet]],
			Month:    strings.TrimSpace(record[columns[ColumnMonth]]),
		}

		fields := []struct {
			column string
			dst    *float64
		}{
			{ColumnSentiment, &t.Sentiment},
			{ColumnSubjectivity, &t.Subjectivity},
			{ColumnDimension1, &t.Dim1},
			{ColumnDimension2, &t.Dim2},
		}
		for _, f := range fields {
			v, err := parseScore(record[columns[f.column]])
			if err != nil {
				return nil, fmt.Errorf("%w: row %d column %q: %w", ErrMalformedRow, index, f.column, err)
			}
			*f.dst = v
		}

		rows = append(rows, t)
	}

	if len(rows) == 0 {
		return nil, ErrEmptyDataset
	}
	return rows, nil
}

func parseScore(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite value %q", raw)
	}
	return v, nil
}
