package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-report-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-report-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-report-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-report-go/internal/pkg/metrics"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// Handlers groups everything mounted under /api/v1.
type Handlers struct {
	Report   ReportHandler
	Leave    LeaveHandler
	Training TrainingHandler
	Activity ActivityHandler
	System   SystemHandler
}

func NewRouter(logger *slog.Logger, JWTService jwt.Service, metricsManager *metrics.Manager, frontendURL string, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(middleware.Metrics(metricsManager))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	if metricsManager != nil {
		r.Method(http.MethodGet, "/metrics", metricsManager.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.Route("/reports", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionReportsView))
					r.Get("/headcount", h.Report.Headcount)
					r.Get("/performance", h.Report.EmployeePerformance)
					r.Get("/training-completion", h.Report.TrainingCompletion)
					r.Get("/attendance", h.Report.AttendanceStats)
					r.Get("/leave", h.Report.LeaveStats)
					r.Post("/custom", h.Report.Custom)
				})

				r.With(middleware.RequirePermission(user.PermissionReportsExport)).Post("/export", h.Report.Export)
			})

			r.Route("/leave/requests", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionLeaveViewAll)).Get("/", h.Leave.ListRequests)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionLeaveCreate))
					r.Post("/", h.Leave.CreateRequest)
					r.Put("/{id}", h.Leave.UpdateRequest)
					r.Post("/{id}/cancel", h.Leave.CancelRequest)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionLeaveApprove))
					r.Post("/{id}/approve", h.Leave.ApproveRequest)
					r.Post("/{id}/reject", h.Leave.RejectRequest)
				})
			})

			r.Route("/trainings", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionTrainingView))
					r.Get("/", h.Training.List)
					r.Put("/assignments/{id}/status", h.Training.UpdateStatus)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionTrainingManage))
					r.Post("/", h.Training.Create)
					r.Put("/{id}", h.Training.Update)
					r.Delete("/{id}", h.Training.Delete)
					r.Post("/{id}/assignments", h.Training.Assign)
				})
			})

			r.With(middleware.RequirePermission(user.PermissionActivityView)).Get("/activities", h.Activity.List)

			r.With(middleware.RequirePermission(user.PermissionSystemStatus)).Get("/system/db-status", h.System.DBStatus)
		})
	})
	return r
}
