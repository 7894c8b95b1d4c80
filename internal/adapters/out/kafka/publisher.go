// Package kafka publishes outbox messages to a Kafka topic.
package kafka

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"bakery/internal/core/ports"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker/v2"
)

const (
	HeaderEventType = "event_type"
	HeaderEventID   = "event_id"
)

// ErrPublisherUnavailable is returned while the circuit breaker is open.
var ErrPublisherUnavailable = errors.New("event publisher is unavailable")

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

type publishRecorder interface {
	OutboxPublished(eventType string, err error)
	BreakerChanged(name string, open bool)
}

type BreakerSettings struct {
	Name string
	// ConsecutiveFailures trips the breaker.
	ConsecutiveFailures uint32
	// OpenTimeout is how long the breaker stays open before a trial request.
	OpenTimeout time.Duration
}

func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		Name:                "outbox-kafka",
		ConsecutiveFailures: 5,
		OpenTimeout:         30 * time.Second,
	}
}

// NewWriter builds a writer keyed by aggregate id, so every event of one
// order lands on the same partition in order.
func NewWriter(brokersCSV, topic string) *kafkago.Writer {
	brokers := make([]string, 0)
	for _, b := range strings.Split(brokersCSV, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}

	return &kafkago.Writer{
		Addr:                   kafkago.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireOne,
		AllowAutoTopicCreation: true,
	}
}

// Publisher implements ports.EventPublisher.
type Publisher struct {
	writer   messageWriter
	breaker  *gobreaker.CircuitBreaker[struct{}]
	recorder publishRecorder
	logger   *slog.Logger
}

var _ ports.EventPublisher = (*Publisher)(nil)

func NewPublisher(
	writer messageWriter,
	settings BreakerSettings,
	recorder publishRecorder,
	logger *slog.Logger,
) *Publisher {
	p := &Publisher{
		writer:   writer,
		recorder: recorder,
		logger:   logger.With("component", "kafka_publisher"),
	}

	p.breaker = gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        settings.Name,
		MaxRequests: 1,
		Timeout:     settings.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= settings.ConsecutiveFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			p.logger.Warn("Circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
			p.recorder.BreakerChanged(name, to != gobreaker.StateClosed)
		},
	})

	return p
}

func (p *Publisher) Publish(ctx context.Context, msg ports.OutboxMessage) error {
	message := kafkago.Message{
		Key:   []byte(msg.AggregateID.String()),
		Value: msg.Payload,
		Time:  msg.OccurredAt,
		Headers: []kafkago.Header{
			{Key: HeaderEventType, Value: []byte(msg.EventType)},
			{Key: HeaderEventID, Value: []byte(msg.ID.String())},
		},
	}

	_, err := p.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, p.writer.WriteMessages(ctx, message)
	})
	p.recorder.OutboxPublished(msg.EventType, err)

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %w", ErrPublisherUnavailable, err)
	}
	return err
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
