package models

import "github.com/nakulbh/tweetdash/internal/dashboard"

// ScatterEntry is the payload of the scatter endpoint: the criteria actually
// applied (after defaults), the number of matching tweets and the figure.
type ScatterEntry struct {
	Criteria dashboard.Criteria `json:"criteria"`
	Count    int                `json:"count"`
	Figure   dashboard.Figure   `json:"figure"`
}

func NewScatterEntry(criteria dashboard.Criteria, figure dashboard.Figure) ScatterEntry {
	count := 0
	if len(figure.Data) > 0 {
		count = len(figure.Data[0].X)
	}
	return ScatterEntry{Criteria: criteria, Count: count, Figure: figure}
}

// TweetTableEntry is one page of the selection table plus the indices it was built from.
type TweetTableEntry struct {
	Indices []int `json:"indices"`
	dashboard.Page
}

// DatasetSummary describes the loaded dataset for health and debug output.
type DatasetSummary struct {
	Source     string `json:"source"`
	TweetCount int    `json:"tweetCount"`
	MonthCount int    `json:"monthCount"`
	LoadedAt   int64  `json:"loadedAt"`
}
