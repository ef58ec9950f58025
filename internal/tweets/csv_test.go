package tweets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV(t *testing.T) {
	t.Run("columns are located by name", func(t *testing.T) {
		input := "RawTweet,Dimension 2,Dimension 1,Subjectivity,Sentiment,Month,Extra\n" +
			"\"hello, world\",2.5,-1.5,0.4,0.1,March,x\n" +
			"bye,0,0,0,-0.2,April,y\n"

		rows, err := ParseCSV(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, rows, 2)

		assert.Equal(t, Tweet{
			Index: 0, RawTweet: "hello, world", Month: "March",
			Sentiment: 0.1, Subjectivity: 0.4, Dim1: -1.5, Dim2: 2.5,
		}, rows[0])
		assert.Equal(t, 1, rows[1].Index)
		assert.Equal(t, "April", rows[1].Month)
	})

	t.Run("byte order mark is stripped", func(t *testing.T) {
		input := "\ufeffMonth,Sentiment,Subjectivity,Dimension 1,Dimension 2,RawTweet\nMay,0,0,0,0,hi\n"
		rows, err := ParseCSV(strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, "May", rows[0].Month)
	})

	t.Run("missing column", func(t *testing.T) {
		input := "Month,Sentiment,Subjectivity,Dimension 1,RawTweet\nMay,0,0,0,hi\n"
		_, err := ParseCSV(strings.NewReader(input))
		assert.ErrorIs(t, err, ErrMissingColumn)
		assert.Contains(t, err.Error(), "Dimension 2")
	})

	t.Run("non-numeric score", func(t *testing.T) {
		input := "Month,Sentiment,Subjectivity,Dimension 1,Dimension 2,RawTweet\nMay,positive,0,0,0,hi\n"
		_, err := ParseCSV(strings.NewReader(input))
		assert.ErrorIs(t, err, ErrMalformedRow)
		assert.Contains(t, err.Error(), `row 0 column "Sentiment"`)
	})

	t.Run("non-finite score", func(t *testing.T) {
		input := "Month,Sentiment,Subjectivity,Dimension 1,Dimension 2,RawTweet\nMay,0,NaN,0,0,hi\n"
		_, err := ParseCSV(strings.NewReader(input))
		assert.ErrorIs(t, err, ErrMalformedRow)
	})

	t.Run("short row", func(t *testing.T) {
		input := "Month,Sentiment,Subjectivity,Dimension 1,Dimension 2,RawTweet\nMay,0,0\n"
		_, err := ParseCSV(strings.NewReader(input))
		assert.ErrorIs(t, err, ErrMalformedRow)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := ParseCSV(strings.NewReader(""))
		assert.ErrorIs(t, err, ErrEmptyDataset)

		_, err = ParseCSV(strings.NewReader("Month,Sentiment,Subjectivity,Dimension 1,Dimension 2,RawTweet\n"))
		assert.ErrorIs(t, err, ErrEmptyDataset)
	})
}
