package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-report-go/internal/domain/training"
	"github.com/cmlabs-hris/hris-report-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-report-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-report-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type TrainingHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Assign(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type trainingHandlerImpl struct {
	trainingService training.Service
}

func NewTrainingHandler(trainingService training.Service) TrainingHandler {
	return &trainingHandlerImpl{trainingService: trainingService}
}

// List handles GET /trainings?search=&type=
func (h *trainingHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var errs validator.ValidationErrors
	trainingType := validator.EnumField(&errs, "type", r.URL.Query().Get("type"), training.Types)
	if err := errs.Err(); err != nil {
		response.HandleError(w, err)
		return
	}

	filter := training.ListFilter{Search: validator.OptionalString(r.URL.Query().Get("search"))}
	if trainingType != nil {
		t := training.Type(*trainingType)
		filter.Type = &t
	}

	trainings, err := h.trainingService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, trainings)
}

// Create handles POST /trainings
func (h *trainingHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	caller, err := jwt.CallerFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req training.CreateTrainingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create training decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.trainingService.Create(r.Context(), caller.UserID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Training created successfully", created)
}

// Update handles PUT /trainings/{id}
func (h *trainingHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	caller, err := jwt.CallerFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req training.UpdateTrainingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update training decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.trainingService.Update(r.Context(), caller.UserID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Training updated successfully", updated)
}

// Delete handles DELETE /trainings/{id}
func (h *trainingHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	caller, err := jwt.CallerFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.trainingService.Delete(r.Context(), caller.UserID, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Training deleted successfully", nil)
}

// Assign handles POST /trainings/{id}/assignments
func (h *trainingHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	caller, err := jwt.CallerFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req training.AssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Assign training decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.TrainingID = chi.URLParam(r, "id")

	if err := h.trainingService.Assign(r.Context(), caller.UserID, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Training assigned successfully", nil)
}

// UpdateStatus handles PUT /trainings/assignments/{id}/status
func (h *trainingHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	caller, err := jwt.CallerFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req training.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update training status decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.AssignmentID = chi.URLParam(r, "id")

	updated, err := h.trainingService.UpdateStatus(r.Context(), caller.UserID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Training status updated successfully", updated)
}
