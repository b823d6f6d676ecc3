// Package kafka publishes domain events to the clinic event topic.
// Events are keyed by clinic so consumers see each tenant's stream in
// order.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/dentara/dentara/pkg/events"
)

// Publisher implements port.EventPublisher over a kafka-go writer.
type Publisher struct {
	writer *kafkago.Writer
}

func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafkago.Writer{
			Addr:         kafkago.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafkago.LeastBytes{},
			BatchTimeout: 10 * time.Millisecond,
			RequiredAcks: kafkago.RequireAll,
		},
	}
}

func (p *Publisher) Publish(ctx context.Context, ev events.DomainEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", ev.EventType(), err)
	}

	msg := kafkago.Message{
		Key:   []byte(ev.ClinicID()),
		Value: payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(ev.EventType())},
			{Key: "event_id", Value: []byte(ev.EventID())},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka publish %s: %w", ev.EventType(), err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
