package utils

import (
	"errors"
	"fmt"
	"math"

	"github.com/nakulbh/tweetdash/internal/dashboard"
)

const (
	MaxPageSize    = 100
	maxMonthLength = 100
)

// ValidateMonth validates a month label from the dropdown.
func ValidateMonth(month string) error {
	if month == "" {
		return errors.New("month cannot be empty")
	}
	if len(month) > maxMonthLength {
		return fmt.Errorf("month too long (max %d characters)", maxMonthLength)
	}
	return nil
}

// ValidateScore validates a slider bound.
func ValidateScore(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errors.New("value must be a finite number")
	}
	return nil
}

// ValidateRange records an error against both bounds when r is inverted.
func ValidateRange(r dashboard.Range, minKey, maxKey string, fieldErrors map[string][]string) {
	if r.Min > r.Max {
		msg := fmt.Sprintf("%s must not exceed %s", minKey, maxKey)
		fieldErrors[minKey] = append(fieldErrors[minKey], msg)
		fieldErrors[maxKey] = append(fieldErrors[maxKey], msg)
	}
}

// ValidateIndices checks every index refers to a row of a dataset of size n.
func ValidateIndices(indices []int, n int) error {
	for _, i := range indices {
		if i < 0 || i >= n {
			return fmt.Errorf("index %d out of range [0, %d)", i, n)
		}
	}
	return nil
}

func ValidatePagination(page, size int, fieldErrors map[string][]string) {
	if page < 0 {
		fieldErrors[ParamPage] = append(fieldErrors[ParamPage], "page must be non-negative")
	}
	if size < 1 || size > MaxPageSize {
		fieldErrors[ParamPageSize] = append(fieldErrors[ParamPageSize],
			fmt.Sprintf("pageSize must be between 1 and %d", MaxPageSize))
	}
}

