package scheduler

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	mocks "github.com/smartsched/reminder-scheduler/internal/mocks/service/scheduler"
	"github.com/smartsched/reminder-scheduler/internal/model"
	"github.com/smartsched/reminder-scheduler/internal/notify"
	"github.com/smartsched/reminder-scheduler/internal/repository/reminder"
)

// requestWith matches a notify.Request by identifier and trigger kind.
type requestWith struct {
	identifier string
	kind       notify.TriggerKind
}

func (m requestWith) Matches(x interface{}) bool {
	req, ok := x.(notify.Request)
	return ok && req.Identifier == m.identifier && req.Trigger.Kind == m.kind
}

func (m requestWith) String() string {
	return fmt.Sprintf("request %s (kind %d)", m.identifier, m.kind)
}

// anyImmediate matches any immediate-trigger request.
type anyImmediate struct{}

func (anyImmediate) Matches(x interface{}) bool {
	req, ok := x.(notify.Request)
	return ok && req.Trigger.Kind == notify.TriggerImmediate
}

func (anyImmediate) String() string { return "immediate request" }

func f64(v float64) *float64 { return &v }

func TestService_CreateReminder_WithCoordinate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockreminderRepository(ctrl)
	sinkMock := mocks.NewMocknotificationSink(ctrl)

	svc := NewService(repoMock, sinkMock)

	id := uuid.New()
	r := model.Reminder{
		Title:       "Pick up package",
		Description: "Front desk closes at 6",
		DueAt:       time.Now().Add(3 * time.Hour),
		Latitude:    f64(33.424564),
		Longitude:   f64(-111.928100),
	}

	repoMock.EXPECT().CreateReminder(gomock.Any(), r).Return(id, nil)
	sinkMock.EXPECT().Submit(gomock.Any(), anyImmediate{})
	sinkMock.EXPECT().Submit(gomock.Any(), requestWith{notify.TimedID(id), notify.TriggerAt})
	sinkMock.EXPECT().Submit(gomock.Any(), requestWith{notify.RegionID(id), notify.TriggerOnRegionEntry})

	created, err := svc.CreateReminder(context.Background(), r)
	assert.NoError(t, err)
	assert.Equal(t, id, created.ID)
	assert.Equal(t, r.Title, created.Title)
}

func TestService_CreateReminder_WithoutCoordinate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockreminderRepository(ctrl)
	sinkMock := mocks.NewMocknotificationSink(ctrl)

	svc := NewService(repoMock, sinkMock)

	id := uuid.New()
	r := model.Reminder{
		Title:       "Call mom",
		Description: "Sunday check-in",
		DueAt:       time.Now().Add(time.Hour),
	}

	repoMock.EXPECT().CreateReminder(gomock.Any(), r).Return(id, nil)
	sinkMock.EXPECT().Submit(gomock.Any(), anyImmediate{})
	sinkMock.EXPECT().Submit(gomock.Any(), requestWith{notify.TimedID(id), notify.TriggerAt})
	// No region request without a coordinate.

	_, err := svc.CreateReminder(context.Background(), r)
	assert.NoError(t, err)
}

func TestService_CreateReminder_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockreminderRepository(ctrl)
	sinkMock := mocks.NewMocknotificationSink(ctrl)

	svc := NewService(repoMock, sinkMock)

	r := model.Reminder{Title: "x", Description: "y", DueAt: time.Now()}

	repoMock.EXPECT().CreateReminder(gomock.Any(), r).Return(uuid.Nil, errors.New("db down"))
	// Nothing is submitted when persistence fails.

	_, err := svc.CreateReminder(context.Background(), r)
	assert.Error(t, err)
}

func TestService_UpdateReminder_ReplacesRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockreminderRepository(ctrl)
	sinkMock := mocks.NewMocknotificationSink(ctrl)

	svc := NewService(repoMock, sinkMock)

	id := uuid.New()
	r := model.Reminder{
		ID:          id,
		Title:       "Pick up package (renamed)",
		Description: "Front desk closes at 6",
		DueAt:       time.Now().Add(5 * time.Hour),
		Latitude:    f64(33.42),
		Longitude:   f64(-111.92),
	}

	repoMock.EXPECT().UpdateReminder(gomock.Any(), r).Return(nil)
	sinkMock.EXPECT().Cancel(gomock.Any(), notify.TimedID(id))
	sinkMock.EXPECT().Cancel(gomock.Any(), notify.RegionID(id))
	sinkMock.EXPECT().Submit(gomock.Any(), requestWith{notify.TimedID(id), notify.TriggerAt})
	sinkMock.EXPECT().Submit(gomock.Any(), requestWith{notify.RegionID(id), notify.TriggerOnRegionEntry})

	err := svc.UpdateReminder(context.Background(), r)
	assert.NoError(t, err)
}

func TestService_UpdateReminder_CoordinateRemoved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockreminderRepository(ctrl)
	sinkMock := mocks.NewMocknotificationSink(ctrl)

	svc := NewService(repoMock, sinkMock)

	id := uuid.New()
	r := model.Reminder{
		ID:          id,
		Title:       "No longer place-bound",
		Description: "desc",
		DueAt:       time.Now().Add(time.Hour),
	}

	repoMock.EXPECT().UpdateReminder(gomock.Any(), r).Return(nil)
	sinkMock.EXPECT().Cancel(gomock.Any(), notify.TimedID(id))
	sinkMock.EXPECT().Cancel(gomock.Any(), notify.RegionID(id))
	// Only the timed request comes back.
	sinkMock.EXPECT().Submit(gomock.Any(), requestWith{notify.TimedID(id), notify.TriggerAt})

	err := svc.UpdateReminder(context.Background(), r)
	assert.NoError(t, err)
}

func TestService_DeleteReminder_CancelsRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockreminderRepository(ctrl)
	sinkMock := mocks.NewMocknotificationSink(ctrl)

	svc := NewService(repoMock, sinkMock)

	id := uuid.New()

	repoMock.EXPECT().DeleteReminder(gomock.Any(), id).Return(nil)
	sinkMock.EXPECT().Cancel(gomock.Any(), notify.TimedID(id))
	sinkMock.EXPECT().Cancel(gomock.Any(), notify.RegionID(id))

	err := svc.DeleteReminder(context.Background(), id)
	assert.NoError(t, err)
}

func TestService_DeleteReminder_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockreminderRepository(ctrl)
	sinkMock := mocks.NewMocknotificationSink(ctrl)

	svc := NewService(repoMock, sinkMock)

	id := uuid.New()

	repoMock.EXPECT().DeleteReminder(gomock.Any(), id).Return(reminder.ErrReminderNotFound)
	// Nothing is cancelled when the delete did not happen.

	err := svc.DeleteReminder(context.Background(), id)
	assert.ErrorIs(t, err, reminder.ErrReminderNotFound)
}

func TestService_RestoreSchedules(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockreminderRepository(ctrl)
	sinkMock := mocks.NewMocknotificationSink(ctrl)

	svc := NewService(repoMock, sinkMock)

	id1 := uuid.New()
	id2 := uuid.New()
	reminders := []model.Reminder{
		{ID: id1, Title: "a", Description: "a", DueAt: time.Now().Add(time.Hour)},
		{ID: id2, Title: "b", Description: "b", DueAt: time.Now().Add(2 * time.Hour), Latitude: f64(1), Longitude: f64(2)},
	}

	repoMock.EXPECT().GetAllReminders(gomock.Any()).Return(reminders, nil)
	sinkMock.EXPECT().Submit(gomock.Any(), requestWith{notify.TimedID(id1), notify.TriggerAt})
	sinkMock.EXPECT().Submit(gomock.Any(), requestWith{notify.TimedID(id2), notify.TriggerAt})
	sinkMock.EXPECT().Submit(gomock.Any(), requestWith{notify.RegionID(id2), notify.TriggerOnRegionEntry})

	err := svc.RestoreSchedules(context.Background())
	assert.NoError(t, err)
}

func TestService_RestoreSchedules_EmptyRepo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockreminderRepository(ctrl)
	sinkMock := mocks.NewMocknotificationSink(ctrl)

	svc := NewService(repoMock, sinkMock)

	repoMock.EXPECT().GetAllReminders(gomock.Any()).Return(nil, reminder.ErrNoRemindersFound)

	err := svc.RestoreSchedules(context.Background())
	assert.NoError(t, err)
}

func TestService_RestoreSchedules_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockreminderRepository(ctrl)
	sinkMock := mocks.NewMocknotificationSink(ctrl)

	svc := NewService(repoMock, sinkMock)

	repoMock.EXPECT().GetAllReminders(gomock.Any()).Return(nil, errors.New("db down"))

	err := svc.RestoreSchedules(context.Background())
	assert.Error(t, err)
}
