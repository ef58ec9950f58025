package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/nakulbh/tweetdash/internal/dashboard"
)

// SetRoutes registers the JSON and image endpoints on router.
func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/healthz", api.healthHandler)
	router.Handler(http.MethodGet, "/api/controls.json", api.limited(api.controlsHandler))
	router.Handler(http.MethodGet, "/api/scatter.json", api.limited(api.scatterHandler))
	router.Handler(http.MethodGet, "/api/scatter.svg", api.limited(api.scatterImageHandler(dashboard.FormatSVG)))
	router.Handler(http.MethodGet, "/api/scatter.png", api.limited(api.scatterImageHandler(dashboard.FormatPNG)))
	router.Handler(http.MethodGet, "/api/tweets.json", api.limited(api.tweetsHandler))
	router.Handler(http.MethodPost, "/api/selection.json", api.limited(api.selectionHandler))
	router.Handler(http.MethodGet, "/api/tweet/:index", api.limited(api.tweetHandler))
}

func (api *RestAPI) limited(h http.HandlerFunc) http.Handler {
	if api.rateLimiter == nil {
		return h
	}
	return api.rateLimiter.Handler(h)
}

// Handler wraps next with the middleware shared by every route:
// request logging, security headers and response compression.
func (api *RestAPI) Handler(next http.Handler) http.Handler {
	return NewRequestLoggingMiddleware(api.Logger)(
		api.WithSecurityHeaders(
			CompressionMiddleware(next)))
}
