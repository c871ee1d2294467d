// Package relay forwards store change events to a Kafka topic so other
// services can follow the session without polling the API.
package relay

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/team-tracker-go/internal/domain/event"
	"github.com/segmentio/kafka-go"
)

// MessageWriter is the part of *kafka.Writer the relay uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// NewKafkaWriter builds a writer for the given brokers and topic.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
	}
}

// Relay queues changes and writes them from a single goroutine, so Publish
// never waits on the broker.
type Relay struct {
	writer MessageWriter
	queue  chan event.Change
}

func New(writer MessageWriter, buffer int) *Relay {
	if buffer <= 0 {
		buffer = 256
	}
	return &Relay{
		writer: writer,
		queue:  make(chan event.Change, buffer),
	}
}

// Publish implements event.Publisher. Changes are dropped when the queue is
// full.
func (r *Relay) Publish(change event.Change) {
	select {
	case r.queue <- change:
	default:
		slog.Warn("Relay queue full, dropping change", "event", change.Name(), "id", change.ID)
	}
}

// Run writes queued changes until ctx is cancelled, then flushes what is
// left in the queue and closes the writer.
func (r *Relay) Run(ctx context.Context) error {
	slog.Info("Kafka relay started")
	for {
		select {
		case <-ctx.Done():
			r.drain()
			slog.Info("Kafka relay stopped")
			return r.writer.Close()
		case change := <-r.queue:
			if err := r.send(ctx, change); err != nil {
				slog.Error("Failed to relay change", "event", change.Name(), "id", change.ID, "error", err)
			}
		}
	}
}

func (r *Relay) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for {
		select {
		case change := <-r.queue:
			if err := r.send(ctx, change); err != nil {
				slog.Error("Failed to relay change", "event", change.Name(), "id", change.ID, "error", err)
			}
		default:
			return
		}
	}
}

// Message converts a change into a Kafka message keyed by collection and id.
func Message(change event.Change) (kafka.Message, error) {
	value, err := json.Marshal(change)
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{
		Key:   []byte(string(change.Collection) + ":" + change.ID),
		Value: value,
		Time:  change.At,
		Headers: []kafka.Header{
			{Key: "event", Value: []byte(change.Name())},
		},
	}, nil
}

func (r *Relay) send(ctx context.Context, change event.Change) error {
	msg, err := Message(change)
	if err != nil {
		return err
	}
	return r.writer.WriteMessages(ctx, msg)
}
