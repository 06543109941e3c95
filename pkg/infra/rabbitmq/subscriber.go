package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sokoide/workshop/software/lru_cache/pkg/domain"
)

type subscriber struct {
	ch *amqp.Channel
}

// NewSubscriber creates a new EvictionSubscriber implementation using RabbitMQ.
func NewSubscriber(ch *amqp.Channel) domain.EvictionSubscriber {
	return &subscriber{ch: ch}
}

func (s *subscriber) Subscribe(ctx context.Context, routingKey string, handler func(domain.EvictionEvent) error) error {
	// Temporary queue, exclusive to this consumer
	q, err := s.ch.QueueDeclare(
		"",    // random name
		false, // non-durable
		true,  // delete when unused
		true,  // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("could not declare queue: %w", err)
	}

	err = s.ch.QueueBind(
		q.Name,       // queue name
		routingKey,   // routing key
		ExchangeName, // exchange
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("could not bind queue: %w", err)
	}

	msgs, err := s.ch.Consume(
		q.Name, // queue
		"",     // consumer tag
		true,   // auto-ack
		false,  // exclusive
		false,  // no-local
		false,  // no-wait
		nil,    // args
	)
	if err != nil {
		return fmt.Errorf("could not start consume: %w", err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case d, ok := <-msgs:
				if !ok {
					return
				}
				var event domain.EvictionEvent
				if err := json.Unmarshal(d.Body, &event); err != nil {
					log.Printf("Error unmarshaling eviction event: %v", err)
					continue
				}
				if err := handler(event); err != nil {
					log.Printf("Error handling eviction event: %v", err)
				}
			}
		}
	}()

	return nil
}
