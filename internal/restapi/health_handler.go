package restapi

import (
	"net/http"

	"github.com/nakulbh/tweetdash/internal/models"
)

func (api *RestAPI) datasetSummary() models.DatasetSummary {
	ds := api.Dataset
	return models.DatasetSummary{
		Source:     ds.Source(),
		TweetCount: ds.Len(),
		MonthCount: len(ds.Months()),
		LoadedAt:   ds.LoadedAt().UnixMilli(),
	}
}

func (api *RestAPI) healthHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewEntryResponse(api.datasetSummary()))
}
