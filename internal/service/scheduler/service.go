// Package scheduler keeps the armed set of notification requests consistent
// with the reminder repository across creates, updates, deletes, and process
// restarts.
package scheduler

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/smartsched/reminder-scheduler/internal/model"
	"github.com/smartsched/reminder-scheduler/internal/notify"
	"github.com/smartsched/reminder-scheduler/internal/repository/reminder"
)

// GeofenceRadiusMeters is the radius of the circular region armed around a
// reminder's coordinate.
const GeofenceRadiusMeters = 100

//go:generate mockgen -source=service.go -destination=../../mocks/service/scheduler/mock.go -package=mocks

type reminderRepository interface {
	CreateReminder(context.Context, model.Reminder) (uuid.UUID, error)
	UpdateReminder(context.Context, model.Reminder) error
	DeleteReminder(context.Context, uuid.UUID) error
	GetReminderByID(context.Context, uuid.UUID) (model.Reminder, error)
	GetAllReminders(context.Context) ([]model.Reminder, error)
}

type notificationSink interface {
	Submit(ctx context.Context, req notify.Request)
	Cancel(ctx context.Context, identifier string)
}

type Service struct {
	repo reminderRepository
	sink notificationSink
}

func NewService(repo reminderRepository, sink notificationSink) *Service {
	return &Service{repo: repo, sink: sink}
}

// CreateReminder persists a new reminder and arms its notifications: an
// immediate creation confirmation, a due-time notification, and a region
// notification when a coordinate is present.
//
// The repository write commits before any request is submitted; submission
// is fire-and-forget and never fails the create.
func (s *Service) CreateReminder(ctx context.Context, r model.Reminder) (model.Reminder, error) {
	id, err := s.repo.CreateReminder(ctx, r)
	if err != nil {
		return model.Reminder{}, fmt.Errorf("create reminder: %w", err)
	}
	r.ID = id

	s.sink.Submit(ctx, notify.Request{
		Identifier: uuid.New().String(),
		Title:      "Smart Scheduler",
		Body:       fmt.Sprintf("REMINDER: %s\n%s", r.Title, r.Description),
		Trigger:    notify.Immediate(),
	})

	s.armReminder(ctx, r)

	return r, nil
}

// UpdateReminder persists the mutated reminder, then replaces its armed
// requests from the new state. The explicit cancel before re-arming also
// clears the region request when an update removed the coordinate.
func (s *Service) UpdateReminder(ctx context.Context, r model.Reminder) error {
	if err := s.repo.UpdateReminder(ctx, r); err != nil {
		return fmt.Errorf("update reminder: %w", err)
	}

	s.sink.Cancel(ctx, notify.TimedID(r.ID))
	s.sink.Cancel(ctx, notify.RegionID(r.ID))
	s.armReminder(ctx, r)

	return nil
}

// DeleteReminder removes the reminder and cancels its armed requests so no
// orphaned notification survives the delete.
func (s *Service) DeleteReminder(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteReminder(ctx, id); err != nil {
		return fmt.Errorf("delete reminder: %w", err)
	}

	s.sink.Cancel(ctx, notify.TimedID(id))
	s.sink.Cancel(ctx, notify.RegionID(id))

	return nil
}

// GetReminderByID returns a single reminder.
func (s *Service) GetReminderByID(ctx context.Context, id uuid.UUID) (model.Reminder, error) {
	r, err := s.repo.GetReminderByID(ctx, id)
	if err != nil {
		return model.Reminder{}, fmt.Errorf("get reminder: %w", err)
	}

	return r, nil
}

// GetAllReminders returns every stored reminder.
func (s *Service) GetAllReminders(ctx context.Context) ([]model.Reminder, error) {
	reminders, err := s.repo.GetAllReminders(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all reminders: %w", err)
	}

	return reminders, nil
}

// RestoreSchedules re-arms the timed and region requests for every stored
// reminder. Arming is not persisted across restarts, so this runs once at
// process start to make the armed set match repository state. Replace
// semantics make it idempotent.
func (s *Service) RestoreSchedules(ctx context.Context) error {
	reminders, err := s.repo.GetAllReminders(ctx)
	if err != nil {
		if errors.Is(err, reminder.ErrNoRemindersFound) {
			return nil
		}

		return fmt.Errorf("restore schedules: %w", err)
	}

	for _, r := range reminders {
		s.armReminder(ctx, r)
	}

	zlog.Logger.Info().Int("count", len(reminders)).Msg("restored reminder schedules")

	return nil
}

// armReminder submits the due-time request and, when a coordinate is
// present, the region request. Identifiers derive from the reminder id, so
// resubmitting replaces whatever was armed before.
func (s *Service) armReminder(ctx context.Context, r model.Reminder) {
	s.sink.Submit(ctx, notify.Request{
		Identifier: notify.TimedID(r.ID),
		Title:      r.Title,
		Body:       r.Description,
		Trigger:    notify.At(r.DueAt),
	})

	if !r.HasCoordinate() {
		return
	}

	s.sink.Submit(ctx, notify.Request{
		Identifier: notify.RegionID(r.ID),
		Title:      fmt.Sprintf("You're near %s", r.Title),
		Body:       "You have a reminder for this location.",
		Trigger:    notify.OnRegionEntry(*r.Latitude, *r.Longitude, GeofenceRadiusMeters),
	})
}
