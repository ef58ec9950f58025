package restapi

import (
	"net/http"

	"github.com/nakulbh/tweetdash/internal/dashboard"
	"github.com/nakulbh/tweetdash/internal/models"
)

func (api *RestAPI) controlsHandler(w http.ResponseWriter, r *http.Request) {
	controls := dashboard.NewControls(api.Dataset)
	api.sendResponse(w, r, models.NewEntryResponse(controls))
}
