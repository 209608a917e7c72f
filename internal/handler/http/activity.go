package http

import (
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/hris-report-go/internal/domain/activity"
	"github.com/cmlabs-hris/hris-report-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-report-go/internal/pkg/validator"
)

type ActivityHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type activityHandlerImpl struct {
	activityService activity.Service
}

func NewActivityHandler(activityService activity.Service) ActivityHandler {
	return &activityHandlerImpl{activityService: activityService}
}

// List handles GET /activities?limit=&user_id=
func (h *activityHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter activity.ListFilter

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			response.BadRequest(w, "invalid limit parameter", nil)
			return
		}
		filter.Limit = limit
	}
	filter.UserID = validator.OptionalString(r.URL.Query().Get("user_id"))
	filter.Normalize()

	activities, err := h.activityService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, activities, &response.Meta{Limit: filter.Limit})
}
