package worker

import (
	"context"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/smartsched/reminder-scheduler/internal/rabbitmq/queue"
)

//go:generate mockgen -source=deliverer.go -destination=../mocks/worker/mock.go -package=mocks

type deliveryConsumer interface {
	Consume(out chan<- queue.DeliveryMessage, strategy retry.Strategy) error
}

type messageHandler interface {
	HandleMessage(ctx context.Context, msg queue.DeliveryMessage, strategy retry.Strategy)
}

type deliveryService interface {
	Status(ctx context.Context, strategy retry.Strategy, identifier string) (string, error)
}

// Deliverer consumes fired notifications from the delivery queue and hands
// them to the message handler on a pool of workers. Identifiers whose cached
// status is cancelled are skipped, so a cancel that raced an already-fired
// request still suppresses the user-visible notification.
type Deliverer struct {
	queue   deliveryConsumer
	handler messageHandler
	service deliveryService
}

func NewDeliverer(q deliveryConsumer, h messageHandler, s deliveryService) *Deliverer {
	return &Deliverer{
		queue:   q,
		handler: h,
		service: s,
	}
}

func (d *Deliverer) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	msgChan := make(chan queue.DeliveryMessage)

	go func() {
		if err := d.queue.Consume(msgChan, strategy); err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to consume messages")
		}
	}()

	for i := 0; i < workerCount; i++ {
		go func(id int) {
			zlog.Logger.Printf("worker-%d started", id)

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Printf("worker-%d shutting down", id)
					return
				case msg := <-msgChan:
					status, err := d.service.Status(ctx, strategy, msg.Identifier)
					if err != nil {
						// Status unknown must not block delivery.
						zlog.Logger.Printf("failed to get status for %s: %v", msg.Identifier, err)
					}

					if status == "cancelled" {
						zlog.Logger.Printf("notification %s cancelled, skipping", msg.Identifier)
						continue
					}

					d.handler.HandleMessage(ctx, msg, strategy)
				}
			}
		}(i)
	}

	<-ctx.Done()
	zlog.Logger.Print("delivery worker stopped")
}
