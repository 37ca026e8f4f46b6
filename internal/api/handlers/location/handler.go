package location

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/smartsched/reminder-scheduler/internal/api/respond"
	"github.com/smartsched/reminder-scheduler/internal/model"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/location/mock.go -package=mocks

// proximityChecker finds reminders near a reported coordinate.
type proximityChecker interface {
	CheckNearby(ctx context.Context, lat, lon float64) ([]model.Reminder, error)
}

// regionSink evaluates armed region notifications against a coordinate.
type regionSink interface {
	ReportLocation(ctx context.Context, lat, lon float64)
}

// Handler is the location-source adapter: the device reports coordinate
// readings here. Each reading feeds both region evaluation and the one-shot
// proximity check. Readings are not deduplicated; the device should
// rate-limit how often it reports.
type Handler struct {
	proximity proximityChecker
	regions   regionSink
	validator *validator.Validate
}

func NewHandler(p proximityChecker, r regionSink, v *validator.Validate) *Handler {
	return &Handler{proximity: p, regions: r, validator: v}
}

// ReportRequest is one coordinate reading.
type ReportRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required"`
}

// Report handles HTTP POST requests carrying a coordinate reading.
func (h *Handler) Report(c *ginext.Context) {
	var req ReportRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	h.regions.ReportLocation(c.Request.Context(), *req.Latitude, *req.Longitude)

	nearby, err := h.proximity.CheckNearby(c.Request.Context(), *req.Latitude, *req.Longitude)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to check nearby reminders")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, nearby)
}
