package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sokoide/workshop/software/lru_cache/pkg/domain"
)

type publisher struct {
	ch *amqp.Channel
}

// NewPublisher creates a new EvictionPublisher implementation using RabbitMQ.
func NewPublisher(ch *amqp.Channel) domain.EvictionPublisher {
	return &publisher{ch: ch}
}

func (p *publisher) Publish(ctx context.Context, event domain.EvictionEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("could not marshal event: %w", err)
	}

	return p.ch.PublishWithContext(ctx,
		ExchangeName,            // exchange
		RoutingKey(event.Cache), // routing key
		false,                   // mandatory
		false,                   // immediate
		amqp.Publishing{
			ContentType: "application/json",
			MessageId:   event.EventID,
			Timestamp:   event.EvictedAt,
			Body:        body,
		},
	)
}
