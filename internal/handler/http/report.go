package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/cmlabs-hris/hris-report-go/internal/domain/report"
	"github.com/cmlabs-hris/hris-report-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-report-go/internal/pkg/jwt"
)

type ReportHandler interface {
	Headcount(w http.ResponseWriter, r *http.Request)
	EmployeePerformance(w http.ResponseWriter, r *http.Request)
	TrainingCompletion(w http.ResponseWriter, r *http.Request)
	AttendanceStats(w http.ResponseWriter, r *http.Request)
	LeaveStats(w http.ResponseWriter, r *http.Request)

	Custom(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// Headcount handles GET /reports/headcount
func (h *reportHandlerImpl) Headcount(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.Headcount(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// EmployeePerformance handles GET /reports/performance
func (h *reportHandlerImpl) EmployeePerformance(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.EmployeePerformance(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// TrainingCompletion handles GET /reports/training-completion
func (h *reportHandlerImpl) TrainingCompletion(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.TrainingCompletion(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// AttendanceStats handles GET /reports/attendance?start_date=&end_date=
func (h *reportHandlerImpl) AttendanceStats(w http.ResponseWriter, r *http.Request) {
	req := report.AttendanceStatsRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	result, err := h.reportService.AttendanceStats(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// LeaveStats handles GET /reports/leave?year=. The current year is used when omitted.
func (h *reportHandlerImpl) LeaveStats(w http.ResponseWriter, r *http.Request) {
	year := time.Now().Year()
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			response.BadRequest(w, "invalid year parameter", nil)
			return
		}
		year = parsed
	}

	result, err := h.reportService.LeaveStats(r.Context(), report.LeaveStatsRequest{Year: year})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Custom handles POST /reports/custom
func (h *reportHandlerImpl) Custom(w http.ResponseWriter, r *http.Request) {
	caller, err := jwt.CallerFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req report.CustomReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Custom report decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.reportService.GenerateCustom(r.Context(), caller.UserID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Export handles POST /reports/export and answers with a CSV attachment.
func (h *reportHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	caller, err := jwt.CallerFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req report.ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Export decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	file, err := h.reportService.Export(r.Context(), caller.UserID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.CSV(w, file.Filename, file.ContentType, file.Content)
}
