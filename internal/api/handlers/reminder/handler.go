package reminder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/smartsched/reminder-scheduler/internal/api/respond"
	"github.com/smartsched/reminder-scheduler/internal/model"
	reminderrepo "github.com/smartsched/reminder-scheduler/internal/repository/reminder"
)

// reminderService defines the interface that the Handler depends on.
//
// It abstracts the scheduling core that persists reminders and keeps their
// armed notifications consistent.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/reminder/mock.go -package=mocks
type reminderService interface {
	CreateReminder(ctx context.Context, r model.Reminder) (model.Reminder, error)
	UpdateReminder(ctx context.Context, r model.Reminder) error
	DeleteReminder(ctx context.Context, id uuid.UUID) error
	GetReminderByID(ctx context.Context, id uuid.UUID) (model.Reminder, error)
	GetAllReminders(ctx context.Context) ([]model.Reminder, error)
}

// Handler handles HTTP requests related to reminders.
type Handler struct {
	service   reminderService
	validator *validator.Validate
}

func NewHandler(s reminderService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

// ReminderRequest is the JSON body for creating or updating a reminder.
// DueAt uses the "2006-01-02 15:04:05" layout in the server's local zone.
// Latitude and longitude must be provided together or not at all.
type ReminderRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	DueAt       string   `json:"due_at" validate:"required"`
	Location    *string  `json:"location"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

// toModel validates and converts the request into a Reminder.
func (h *Handler) toModel(req ReminderRequest) (model.Reminder, error) {
	if err := h.validator.Struct(req); err != nil {
		return model.Reminder{}, fmt.Errorf("validation error: %s", err.Error())
	}

	if (req.Latitude == nil) != (req.Longitude == nil) {
		return model.Reminder{}, fmt.Errorf("latitude and longitude must be set together")
	}

	dueAt, err := time.ParseInLocation(time.DateTime, req.DueAt, time.Local)
	if err != nil {
		return model.Reminder{}, fmt.Errorf("invalid due_at format")
	}

	return model.Reminder{
		Title:       req.Title,
		Description: req.Description,
		DueAt:       dueAt,
		Location:    req.Location,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}, nil
}

// Create handles HTTP POST requests to create a new reminder.
func (h *Handler) Create(c *ginext.Context) {
	var req ReminderRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	r, err := h.toModel(req)
	if err != nil {
		zlog.Logger.Warn().Err(err).Msg("invalid create request")
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	created, err := h.service.CreateReminder(c.Request.Context(), r)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("title", r.Title).Msg("failed to create reminder")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, created)
}

// Update handles HTTP PUT requests to mutate an existing reminder. The
// scheduling core replaces the reminder's armed notifications from the new
// state.
func (h *Handler) Update(c *ginext.Context) {
	id, err := parseID(c)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	var req ReminderRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	r, err := h.toModel(req)
	if err != nil {
		zlog.Logger.Warn().Err(err).Msg("invalid update request")
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}
	r.ID = id

	if err := h.service.UpdateReminder(c.Request.Context(), r); err != nil {
		if errors.Is(err, reminderrepo.ErrReminderNotFound) {
			zlog.Logger.Warn().Str("id", id.String()).Msg("reminder not found")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("reminder not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to update reminder")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, r)
}

// Delete handles HTTP DELETE requests. Deleting a reminder also cancels its
// armed notifications.
func (h *Handler) Delete(c *ginext.Context) {
	id, err := parseID(c)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	if err := h.service.DeleteReminder(c.Request.Context(), id); err != nil {
		if errors.Is(err, reminderrepo.ErrReminderNotFound) {
			zlog.Logger.Warn().Str("id", id.String()).Msg("reminder not found")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("reminder not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to delete reminder")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "reminder deleted")
}

// Get handles HTTP GET requests for a single reminder.
func (h *Handler) Get(c *ginext.Context) {
	id, err := parseID(c)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	r, err := h.service.GetReminderByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, reminderrepo.ErrReminderNotFound) {
			zlog.Logger.Warn().Str("id", id.String()).Msg("reminder not found")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("reminder not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get reminder")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, r)
}

// GetAll handles HTTP GET requests to list all reminders.
func (h *Handler) GetAll(c *ginext.Context) {
	reminders, err := h.service.GetAllReminders(c.Request.Context())
	if err != nil {
		if errors.Is(err, reminderrepo.ErrNoRemindersFound) {
			respond.OK(c.Writer, []model.Reminder{})
			return
		}

		zlog.Logger.Error().Err(err).Msg("failed to get reminders")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, reminders)
}

func parseID(c *ginext.Context) (uuid.UUID, error) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("idStr", idStr).Msg("failed to parse id")
		return uuid.Nil, fmt.Errorf("invalid id")
	}

	if id == uuid.Nil {
		zlog.Logger.Warn().Msg("missing id")
		return uuid.Nil, fmt.Errorf("missing id")
	}

	return id, nil
}
