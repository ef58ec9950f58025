package restapi

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/nakulbh/tweetdash/internal/models"
)

// sendResponse encodes response fully before writing so an encoding failure
// can still produce a clean 500.
func (api *RestAPI) sendResponse(w http.ResponseWriter, r *http.Request, response models.ResponseModel) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(response); err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	setJSONResponseType(w)
	w.WriteHeader(response.Code)
	_, _ = w.Write(buf.Bytes())
}

func (api *RestAPI) sendNotFound(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewResponse(http.StatusNotFound, nil, "resource not found"))
}

func setJSONResponseType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
}
