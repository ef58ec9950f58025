package restapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/nakulbh/tweetdash/internal/dashboard"
	"github.com/nakulbh/tweetdash/internal/models"
	"github.com/nakulbh/tweetdash/internal/utils"
)

// The dashboard posts only customdata, about 25 bytes per point.
const maxSelectionBodyBytes = 64 << 20

// tweetsHandler serves the table for an explicit list of indices,
// e.g. /api/tweets.json?indices=3,1,7&page=0.
func (api *RestAPI) tweetsHandler(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	indices, fieldErrors := utils.ParseIndexList(params, utils.ParamIndices, nil)
	page, size, fieldErrors := utils.ParsePagination(params, fieldErrors)
	if indices != nil {
		if err := utils.ValidateIndices(indices, api.Dataset.Len()); err != nil {
			fieldErrors[utils.ParamIndices] = append(fieldErrors[utils.ParamIndices], err.Error())
		}
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	api.sendTable(w, r, indices, page, size)
}

// selectionHandler accepts plotly's selectedData as the request body. An
// empty body or a JSON null means nothing is selected.
func (api *RestAPI) selectionHandler(w http.ResponseWriter, r *http.Request) {
	page, size, fieldErrors := utils.ParsePagination(r.URL.Query(), nil)

	var selection *dashboard.Selection
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSelectionBodyBytes)).Decode(&selection)
	if err != nil && !errors.Is(err, io.EOF) {
		fieldErrors["points"] = append(fieldErrors["points"], "request body must be a plotly selection object")
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	indices, err := selection.Indices()
	if err != nil {
		fieldErrors["points"] = append(fieldErrors["points"], err.Error())
	} else if err := utils.ValidateIndices(indices, api.Dataset.Len()); err != nil {
		fieldErrors["points"] = append(fieldErrors["points"], err.Error())
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	api.sendTable(w, r, indices, page, size)
}

func (api *RestAPI) sendTable(w http.ResponseWriter, r *http.Request, indices []int, page, size int) {
	if indices == nil {
		indices = []int{}
	}
	rows := dashboard.SelectTweets(api.Dataset, indices)
	entry := models.TweetTableEntry{
		Indices: indices,
		Page:    dashboard.Paginate(rows, page, size),
	}
	api.sendResponse(w, r, models.NewEntryResponse(entry))
}
