package restapi

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/nakulbh/tweetdash/internal/dashboard"
	"github.com/nakulbh/tweetdash/internal/models"
	"github.com/nakulbh/tweetdash/internal/utils"
)

const (
	minImageDimension = 100
	maxImageDimension = 2000
)

func (api *RestAPI) scatterHandler(w http.ResponseWriter, r *http.Request) {
	criteria, fieldErrors := utils.ParseCriteria(r.URL.Query(), dashboard.DefaultCriteria(api.Dataset))
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	figure := dashboard.Project(dashboard.Filter(api.Dataset, criteria))
	api.sendResponse(w, r, models.NewEntryResponse(models.NewScatterEntry(criteria, figure)))
}

func (api *RestAPI) scatterImageHandler(format dashboard.ImageFormat) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := r.URL.Query()
		criteria, fieldErrors := utils.ParseCriteria(params, dashboard.DefaultCriteria(api.Dataset))

		var width, height int
		width, fieldErrors = utils.ParseIntParam(params, "width", 0, fieldErrors)
		height, fieldErrors = utils.ParseIntParam(params, "height", 0, fieldErrors)
		validateImageDimension("width", width, fieldErrors)
		validateImageDimension("height", height, fieldErrors)

		if len(fieldErrors) > 0 {
			api.validationErrorResponse(w, r, fieldErrors)
			return
		}

		x, y := api.Dataset.ProjectionBounds()
		var buf bytes.Buffer
		err := dashboard.RenderChart(&buf, dashboard.Filter(api.Dataset, criteria), x, y, dashboard.ChartOptions{
			Width:  width,
			Height: height,
			Format: format,
		})
		if err != nil {
			api.serverErrorResponse(w, r, err)
			return
		}

		w.Header().Set("Content-Type", format.ContentType())
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(buf.Bytes())
	}
}

// validateImageDimension accepts zero (use the default) or a value in
// [minImageDimension, maxImageDimension].
func validateImageDimension(key string, v int, fieldErrors map[string][]string) {
	if v == 0 {
		return
	}
	if v < minImageDimension || v > maxImageDimension {
		fieldErrors[key] = append(fieldErrors[key],
			key+" must be between "+strconv.Itoa(minImageDimension)+" and "+strconv.Itoa(maxImageDimension))
	}
}
