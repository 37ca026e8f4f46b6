// Package delivery fans fired notifications out to the configured user
// channels and tracks per-identifier delivery status.
package delivery

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/delivery/mock.go -package=mocks

// Notifier is one delivery channel (telegram, email).
type Notifier interface {
	Send(to, subject, body string) error
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// Service delivers one notification to every configured channel. This is a
// single-user application: recipients maps channel name to that user's
// address on the channel.
type Service struct {
	notifiers  map[string]Notifier
	recipients map[string]string
	cache      cache
}

func NewService(notifiers map[string]Notifier, recipients map[string]string, cache cache) *Service {
	return &Service{notifiers: notifiers, recipients: recipients, cache: cache}
}

// Send delivers the notification through every configured channel and
// returns the first failure.
func (s *Service) Send(title, body string) error {
	for channel, to := range s.recipients {
		notifier, ok := s.notifiers[channel]
		if !ok {
			return fmt.Errorf("unknown channel %s", channel)
		}

		if err := notifier.Send(to, title, body); err != nil {
			return fmt.Errorf("send via %s: %w", channel, err)
		}
	}

	return nil
}

// Status returns the cached delivery status for an identifier. An unknown
// identifier reports "armed": a missing cache entry must never keep a
// notification from being delivered.
func (s *Service) Status(ctx context.Context, strategy retry.Strategy, identifier string) (string, error) {
	status, err := s.cache.GetWithRetry(ctx, strategy, identifier)
	if errors.Is(err, redis.Nil) {
		return "armed", nil
	}
	if err != nil {
		return "", fmt.Errorf("get delivery status: %w", err)
	}

	return status, nil
}

// SetStatus records the delivery status for an identifier.
func (s *Service) SetStatus(ctx context.Context, strategy retry.Strategy, identifier, status string) error {
	if err := s.cache.SetWithRetry(ctx, strategy, identifier, status); err != nil {
		zlog.Logger.Error().Err(err).Str("identifier", identifier).Msg("failed to cache delivery status")
		return fmt.Errorf("set delivery status: %w", err)
	}

	return nil
}
