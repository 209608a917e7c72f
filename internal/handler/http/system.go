package http

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/cmlabs-hris/hris-report-go/internal/handler/http/response"
)

// Pinger is the part of the pool the status check needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

type SystemHandler interface {
	DBStatus(w http.ResponseWriter, r *http.Request)
}

type systemHandlerImpl struct {
	db  Pinger
	dsn string
	now func() time.Time
}

type DBStatusResponse struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

func NewSystemHandler(db Pinger, dsn string) SystemHandler {
	return &systemHandlerImpl{db: db, dsn: dsn, now: time.Now}
}

// DBStatus handles GET /system/db-status
func (h *systemHandlerImpl) DBStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		slog.ErrorContext(ctx, "database ping failed", slog.String("error", err.Error()))
		response.InternalServerError(w, "Database connection failed")
		return
	}

	response.Success(w, DBStatusResponse{
		Status:    "connected",
		Database:  MaskDSN(h.dsn),
		Timestamp: h.now().UTC(),
	})
}

// MaskDSN hides the password of a URL-style connection string.
func MaskDSN(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil {
		return ""
	}
	return u.Redacted()
}
