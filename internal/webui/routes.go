package webui

import (
	"io/fs"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/nakulbh/tweetdash/internal/app"
)

// WebUI serves the dashboard page, its static assets and the debug dump.
type WebUI struct {
	*app.Application
}

func NewWebUI(app *app.Application) *WebUI {
	return &WebUI{Application: app}
}

func (webUI *WebUI) SetWebUIRoutes(router *httprouter.Router) {
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}

	router.HandlerFunc(http.MethodGet, "/", webUI.dashboardHandler)
	router.HandlerFunc(http.MethodGet, "/debug/", webUI.debugIndexHandler)
	router.ServeFiles("/static/*filepath", http.FS(static))
}
