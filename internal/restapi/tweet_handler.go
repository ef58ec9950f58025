package restapi

import (
	"net/http"
	"strconv"

	"github.com/nakulbh/tweetdash/internal/models"
	"github.com/nakulbh/tweetdash/internal/utils"
)

func (api *RestAPI) tweetHandler(w http.ResponseWriter, r *http.Request) {
	id := utils.ExtractIDFromParams(r, "index")
	index, err := strconv.Atoi(id)
	if err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"index": {"Invalid field value for field \"index\"."},
		})
		return
	}

	tweet, ok := api.Dataset.Tweet(index)
	if !ok {
		api.sendNotFound(w, r)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(tweet))
}
