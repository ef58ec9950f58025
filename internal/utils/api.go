package utils

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/nakulbh/tweetdash/internal/dashboard"
)

// Query parameter names accepted by the scatter endpoints.
const (
	ParamMonth           = "month"
	ParamSentimentMin    = "sentimentMin"
	ParamSentimentMax    = "sentimentMax"
	ParamSubjectivityMin = "subjectivityMin"
	ParamSubjectivityMax = "subjectivityMax"
	ParamIndices         = "indices"
	ParamPage            = "page"
	ParamPageSize        = "pageSize"
)

func invalidField(key string) string {
	return fmt.Sprintf("Invalid field value for field %q.", key)
}

// ParseFloatParam retrieves a float64 value from the provided URL query parameters.
// If the key is absent it returns def. If the value is invalid it returns def
// and records a validation error for key in fieldErrors.
func ParseFloatParam(params url.Values, key string, def float64, fieldErrors map[string][]string) (float64, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := strings.TrimSpace(params.Get(key))
	if val == "" {
		return def, fieldErrors
	}

	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		fieldErrors[key] = append(fieldErrors[key], invalidField(key))
		return def, fieldErrors
	}
	if err := ValidateScore(f); err != nil {
		fieldErrors[key] = append(fieldErrors[key], err.Error())
		return def, fieldErrors
	}
	return f, fieldErrors
}

// ParseIntParam works like ParseFloatParam for integers.
func ParseIntParam(params url.Values, key string, def int, fieldErrors map[string][]string) (int, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := strings.TrimSpace(params.Get(key))
	if val == "" {
		return def, fieldErrors
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		fieldErrors[key] = append(fieldErrors[key], invalidField(key))
		return def, fieldErrors
	}
	return n, fieldErrors
}

// ParseCriteria reads filter criteria from query parameters. Absent
// parameters take their value from defaults.
func ParseCriteria(params url.Values, defaults dashboard.Criteria) (dashboard.Criteria, map[string][]string) {
	c := defaults

	if params.Has(ParamMonth) {
		c.Month = strings.TrimSpace(params.Get(ParamMonth))
	}
	fieldErrors := make(map[string][]string)
	if err := ValidateMonth(c.Month); err != nil {
		fieldErrors[ParamMonth] = append(fieldErrors[ParamMonth], err.Error())
	}

	c.Sentiment.Min, _ = ParseFloatParam(params, ParamSentimentMin, defaults.Sentiment.Min, fieldErrors)
	c.Sentiment.Max, _ = ParseFloatParam(params, ParamSentimentMax, defaults.Sentiment.Max, fieldErrors)
	c.Subjectivity.Min, _ = ParseFloatParam(params, ParamSubjectivityMin, defaults.Subjectivity.Min, fieldErrors)
	c.Subjectivity.Max, _ = ParseFloatParam(params, ParamSubjectivityMax, defaults.Subjectivity.Max, fieldErrors)

	ValidateRange(c.Sentiment, ParamSentimentMin, ParamSentimentMax, fieldErrors)
	ValidateRange(c.Subjectivity, ParamSubjectivityMin, ParamSubjectivityMax, fieldErrors)

	return c, fieldErrors
}

// ParseIndexList reads dataset indices from a comma-separated and/or
// repeated query parameter, preserving order and duplicates.
func ParseIndexList(params url.Values, key string, fieldErrors map[string][]string) ([]int, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	indices := make([]int, 0)
	for _, value := range params[key] {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			n, err := strconv.Atoi(part)
			if err != nil {
				fieldErrors[key] = append(fieldErrors[key], invalidField(key))
				return nil, fieldErrors
			}
			indices = append(indices, n)
		}
	}
	return indices, fieldErrors
}

// ParsePagination reads page and pageSize, defaulting to the first page of
// dashboard.DefaultPageSize rows.
func ParsePagination(params url.Values, fieldErrors map[string][]string) (page, size int, errs map[string][]string) {
	page, fieldErrors = ParseIntParam(params, ParamPage, 0, fieldErrors)
	size, fieldErrors = ParseIntParam(params, ParamPageSize, dashboard.DefaultPageSize, fieldErrors)
	ValidatePagination(page, size, fieldErrors)
	return page, size, fieldErrors
}
