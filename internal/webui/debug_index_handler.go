package webui

import (
	"net/http"

	"github.com/davecgh/go-spew/spew"
	"github.com/nakulbh/tweetdash/internal/dashboard"
	"github.com/nakulbh/tweetdash/internal/tweets"
)

type debugData struct {
	Title string
	Pre   string
}

type datasetSummary struct {
	Source             string
	LoadedAt           string
	Tweets             int
	Months             []string
	SentimentBounds    tweets.Bounds
	SubjectivityBounds tweets.Bounds
	ProjectionX        tweets.Bounds
	ProjectionY        tweets.Bounds
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	content := spew.Sdump(data)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	err := templates.ExecuteTemplate(w, "debug_index.html", debugData{
		Title: title,
		Pre:   content,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")
	ds := webUI.Dataset

	var data interface{}
	var title string

	switch dataType {
	case "summary":
		x, y := ds.ProjectionBounds()
		data = datasetSummary{
			Source:             ds.Source(),
			LoadedAt:           ds.LoadedAt().UTC().Format("2006-01-02T15:04:05Z"),
			Tweets:             ds.Len(),
			Months:             ds.Months(),
			SentimentBounds:    ds.SentimentBounds(),
			SubjectivityBounds: ds.SubjectivityBounds(),
			ProjectionX:        x,
			ProjectionY:        y,
		}
		title = "Dataset - Summary"
	case "months":
		data = dashboard.NewControls(ds).Months
		title = "Dataset - Months"
	case "tweets":
		data = ds.Tweets()
		title = "Dataset - Tweets"
	default:
		data = map[string]string{
			"error": "Please use one of the following: summary, months, tweets.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, data)
}
