package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/hris-report-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-report-go/internal/domain/report"
	"github.com/cmlabs-hris/hris-report-go/internal/domain/training"
	"github.com/cmlabs-hris/hris-report-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-report-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth errors
	case errors.Is(err, user.ErrInvalidToken):
		Unauthorized(w, "Unauthorized")
	case errors.Is(err, user.ErrUserIDMissing):
		Unauthorized(w, "Unauthorized")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")

	// Report domain errors
	case errors.Is(err, report.ErrInvalidReportType):
		BadRequest(w, "Invalid report type", nil)
	case errors.Is(err, report.ErrReportGenerationFailed):
		InternalServerError(w, "Failed to generate report")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrLeaveRequestNotCancellable):
		Conflict(w, "Leave request can no longer be cancelled")

	// Training domain errors
	case errors.Is(err, training.ErrTrainingNotFound):
		NotFound(w, "Training not found")
	case errors.Is(err, training.ErrAssignmentNotFound):
		NotFound(w, "Training assignment not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
