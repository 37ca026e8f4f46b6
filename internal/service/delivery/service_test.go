package delivery

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/smartsched/reminder-scheduler/internal/mocks/service/delivery"
)

func TestService_Send_AllChannels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEmail := mocks.NewMockNotifier(ctrl)
	mockTelegram := mocks.NewMockNotifier(ctrl)

	svc := NewService(
		map[string]Notifier{"email": mockEmail, "telegram": mockTelegram},
		map[string]string{"email": "user@example.com", "telegram": "123456"},
		nil,
	)

	mockEmail.EXPECT().Send("user@example.com", "Smart Scheduler", "REMINDER: Dentist\nAnnual checkup").Return(nil)
	mockTelegram.EXPECT().Send("123456", "Smart Scheduler", "REMINDER: Dentist\nAnnual checkup").Return(nil)

	err := svc.Send("Smart Scheduler", "REMINDER: Dentist\nAnnual checkup")
	assert.NoError(t, err)
}

func TestService_Send_ChannelError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEmail := mocks.NewMockNotifier(ctrl)

	svc := NewService(
		map[string]Notifier{"email": mockEmail},
		map[string]string{"email": "user@example.com"},
		nil,
	)

	mockEmail.EXPECT().Send("user@example.com", "t", "b").Return(errors.New("smtp down"))

	err := svc.Send("t", "b")
	assert.Error(t, err)
}

func TestService_Send_UnknownChannel(t *testing.T) {
	svc := NewService(
		map[string]Notifier{},
		map[string]string{"sms": "+15550100"},
		nil,
	)

	err := svc.Send("t", "b")
	assert.Error(t, err)
}

func TestService_Status(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockcache(ctrl)
	svc := NewService(nil, nil, mockCache)

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	mockCache.EXPECT().GetWithRetry(gomock.Any(), strategy, "timed:4f2c").Return("cancelled", nil)

	status, err := svc.Status(context.Background(), strategy, "timed:4f2c")
	assert.NoError(t, err)
	assert.Equal(t, "cancelled", status)
}

func TestService_Status_MissingDefaultsToArmed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockcache(ctrl)
	svc := NewService(nil, nil, mockCache)

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	mockCache.EXPECT().GetWithRetry(gomock.Any(), strategy, "timed:unknown").Return("", redis.Nil)

	status, err := svc.Status(context.Background(), strategy, "timed:unknown")
	assert.NoError(t, err)
	assert.Equal(t, "armed", status)
}

func TestService_SetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockcache(ctrl)
	svc := NewService(nil, nil, mockCache)

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	mockCache.EXPECT().SetWithRetry(gomock.Any(), strategy, "timed:4f2c", "sent").Return(nil)

	err := svc.SetStatus(context.Background(), strategy, "timed:4f2c", "sent")
	assert.NoError(t, err)
}
