// Package proximity checks a single coordinate reading against all stored
// reminders and notifies for the ones within the threshold distance.
package proximity

import (
	"context"
	"errors"
	"fmt"

	"github.com/smartsched/reminder-scheduler/internal/geo"
	"github.com/smartsched/reminder-scheduler/internal/model"
	"github.com/smartsched/reminder-scheduler/internal/notify"
	"github.com/smartsched/reminder-scheduler/internal/repository/reminder"
)

// ThresholdDistanceMeters is the nearby cutoff (100 feet).
const ThresholdDistanceMeters = 30.48

//go:generate mockgen -source=service.go -destination=../../mocks/service/proximity/mock.go -package=mocks

type reminderRepository interface {
	GetAllReminders(context.Context) ([]model.Reminder, error)
}

type notificationSink interface {
	Submit(ctx context.Context, req notify.Request)
}

type Service struct {
	repo reminderRepository
	sink notificationSink
}

func NewService(repo reminderRepository, sink notificationSink) *Service {
	return &Service{repo: repo, sink: sink}
}

// CheckNearby loads the full reminder list, finds reminders whose coordinate
// is within ThresholdDistanceMeters of the reading, submits one immediate
// notification per hit, and returns the hits. Reminders without a coordinate
// are skipped.
//
// Repeated calls re-notify for the same reminder; callers are responsible
// for rate-limiting how often readings are reported.
func (s *Service) CheckNearby(ctx context.Context, lat, lon float64) ([]model.Reminder, error) {
	reminders, err := s.repo.GetAllReminders(ctx)
	if err != nil {
		if errors.Is(err, reminder.ErrNoRemindersFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("check nearby: %w", err)
	}

	var nearby []model.Reminder
	for _, r := range reminders {
		if !r.HasCoordinate() {
			continue
		}

		if geo.Distance(lat, lon, *r.Latitude, *r.Longitude) > ThresholdDistanceMeters {
			continue
		}

		s.sink.Submit(ctx, notify.Request{
			Identifier: notify.ProximityID(r.ID),
			Title:      fmt.Sprintf("Nearby Reminder: %s", r.Title),
			Body:       r.Description,
			Trigger:    notify.Immediate(),
		})

		nearby = append(nearby, r)
	}

	return nearby, nil
}
