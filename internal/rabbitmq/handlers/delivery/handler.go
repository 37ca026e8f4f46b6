package delivery

import (
	"context"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/smartsched/reminder-scheduler/internal/rabbitmq/queue"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/delivery/mock.go -package=mocks
type deliveryService interface {
	Send(title, body string) error
	SetStatus(ctx context.Context, strategy retry.Strategy, identifier, status string) error
}

type Handler struct {
	service deliveryService
}

func NewHandler(svc deliveryService) *Handler {
	return &Handler{
		service: svc,
	}
}

// HandleMessage sends one fired notification through the delivery channels,
// retrying per the strategy, and records the final status. Delivery is
// best-effort: a message that exhausts its retries is marked failed and
// dropped to the DLQ, never re-raised.
func (h *Handler) HandleMessage(ctx context.Context, msg queue.DeliveryMessage, strategy retry.Strategy) {
	err := retry.Do(func() error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			zlog.Logger.Info().Str("identifier", msg.Identifier).Msg("sending notification")
			return h.service.Send(msg.Title, msg.Body)
		}
	}, strategy)

	if err != nil {
		zlog.Logger.Error().Err(err).Str("identifier", msg.Identifier).Msg("notification failed, moving to DLQ")
		if setErr := h.service.SetStatus(ctx, strategy, msg.Identifier, "failed"); setErr != nil {
			zlog.Logger.Error().Err(setErr).Str("identifier", msg.Identifier).Msg("failed to set status=failed")
		}
		return
	}

	zlog.Logger.Info().Str("identifier", msg.Identifier).Msg("notification sent successfully")
	if setErr := h.service.SetStatus(ctx, strategy, msg.Identifier, "sent"); setErr != nil {
		zlog.Logger.Error().Err(setErr).Str("identifier", msg.Identifier).Msg("failed to set status=sent")
	}
}
