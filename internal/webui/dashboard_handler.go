package webui

import (
	"bytes"
	"net/http"

	"github.com/nakulbh/tweetdash/internal/dashboard"
	"github.com/nakulbh/tweetdash/internal/logging"
)

type dashboardPage struct {
	Title    string
	Controls dashboard.Controls
	Total    int
}

func (webUI *WebUI) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	page := dashboardPage{
		Title:    "Tweet Dashboard",
		Controls: dashboard.NewControls(webUI.Dataset),
		Total:    webUI.Dataset.Len(),
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "dashboard.html", page); err != nil {
		logging.LogError(logging.FromContext(r.Context()), "failed to render dashboard", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
