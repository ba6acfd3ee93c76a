// Package kafka publishes outbox messages to Kafka.
package kafka

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront/internal/core/ports"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

var ErrNoBrokers = errors.New("kafka: no brokers configured")

// writeBatchTimeout caps how long a synchronous write waits for a batch to
// fill. The relay writes one message per call and waits for the ack.
const writeBatchTimeout = 10 * time.Millisecond

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher implements ports.EventPublisher. Messages are keyed by the outbox
// key, so all events of one order land on the same partition in order.
type Publisher struct {
	writer     messageWriter
	propagator propagation.TextMapPropagator
}

// ParseBrokers splits a comma-separated broker list, dropping blanks.
func ParseBrokers(csv string) []string {
	brokers := []string{}
	for _, b := range strings.Split(csv, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// NewPublisher creates a publisher for the given brokers. The topic is taken
// from each message.
func NewPublisher(brokers []string) (*Publisher, error) {
	if len(brokers) == 0 {
		return nil, ErrNoBrokers
	}
	return newPublisher(newWriter(brokers), otel.GetTextMapPropagator()), nil
}

// newWriter flushes every message on its own: a batch of one is full as soon
// as it is written, so WriteMessages returns on the broker ack instead of
// waiting for the batch timeout.
func newWriter(brokers []string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchSize:              1,
		BatchTimeout:           writeBatchTimeout,
		AllowAutoTopicCreation: true,
	}
}

func newPublisher(w messageWriter, propagator propagation.TextMapPropagator) *Publisher {
	return &Publisher{writer: w, propagator: propagator}
}

func (p *Publisher) Publish(ctx context.Context, msg ports.OutboxMessage) error {
	headers := headerCarrier{
		{Key: "event_id", Value: []byte(msg.ID.String())},
	}
	p.propagator.Inject(ctx, &headers)

	err := p.writer.WriteMessages(ctx, kafka.Message{
		Topic:   msg.Topic,
		Key:     []byte(msg.Key),
		Value:   msg.Payload,
		Time:    msg.CreatedAt.UTC(),
		Headers: headers,
	})
	if err != nil {
		return fmt.Errorf("publish %s to %s: %w", msg.ID, msg.Topic, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// headerCarrier lets the otel propagator write trace context into message
// headers.
type headerCarrier []kafka.Header

func (c *headerCarrier) Get(key string) string {
	for _, h := range *c {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func (c *headerCarrier) Set(key, value string) {
	for i, h := range *c {
		if h.Key == key {
			(*c)[i].Value = []byte(value)
			return
		}
	}
	*c = append(*c, kafka.Header{Key: key, Value: []byte(value)})
}

func (c *headerCarrier) Keys() []string {
	keys := make([]string, len(*c))
	for i, h := range *c {
		keys[i] = h.Key
	}
	return keys
}
