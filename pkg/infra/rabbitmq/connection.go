package rabbitmq

import (
	"fmt"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ExchangeName = "lru_cache_events"
	ExchangeType = "topic"

	retryDelay = 2 * time.Second
)

// SetupConn dials url, retrying up to attempts times, and declares the
// events exchange.
func SetupConn(url string, attempts int) (*amqp.Connection, *amqp.Channel, error) {
	if attempts < 1 {
		attempts = 1
	}

	var conn *amqp.Connection
	var err error

	for i := 0; i < attempts; i++ {
		conn, err = amqp.Dial(url)
		if err == nil {
			break
		}
		log.Printf("Failed to connect to RabbitMQ (attempt %d/%d): %v", i+1, attempts, err)
		if i+1 < attempts {
			time.Sleep(retryDelay)
		}
	}
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("could not open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		ExchangeName, // name
		ExchangeType, // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, nil, fmt.Errorf("could not declare exchange: %w", err)
	}

	return conn, ch, nil
}

// RoutingKey returns the key eviction events of the named cache are
// published with: cache.<name>.evicted.
func RoutingKey(cacheName string) string {
	if cacheName == "" {
		cacheName = "default"
	}
	return fmt.Sprintf("cache.%s.evicted", cacheName)
}
