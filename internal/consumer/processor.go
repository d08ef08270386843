// Package consumer streams questionnaire submissions from Kafka into the
// program service.
package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

// Reader describes the kafka.Reader functions the processor interacts with.
type Reader interface {
	FetchMessage(context.Context) (kafka.Message, error)
	CommitMessages(context.Context, ...kafka.Message) error
	Close() error
}

// Handler processes decoded Kafka messages.
type Handler interface {
	Handle(context.Context, Message) error
}

// Message represents a decoded Kafka record.
type Message struct {
	Topic     string
	Partition int
	Offset    int64
	Key       []byte
	Payload   json.RawMessage
	Timestamp time.Time
	Headers   map[string]string
}

// EventType returns the event_type header.
func (m Message) EventType() string { return m.Headers["event_type"] }

// Option configures processor behaviour.
type Option func(*Processor)

// WithLogger sets a custom logger.
func WithLogger(l *log.Logger) Option {
	return func(p *Processor) { p.logger = l }
}

// WithRetryBackoff sets the first and the maximum delay between attempts to
// handle a message whose handler failed.
func WithRetryBackoff(initial, maxDelay time.Duration) Option {
	return func(p *Processor) {
		p.backoffInitial = initial
		p.backoffMax = maxDelay
	}
}

// Processor coordinates the consumer loop. A message is committed only after
// its handler returns nil; failures are retried in place with exponential
// backoff, so the partition does not advance past an unhandled submission.
type Processor struct {
	reader         Reader
	handler        Handler
	logger         *log.Logger
	backoffInitial time.Duration
	backoffMax     time.Duration
}

// NewProcessor constructs a processor from a reader/handler pair.
func NewProcessor(reader Reader, handler Handler, opts ...Option) *Processor {
	p := &Processor{
		reader:         reader,
		handler:        handler,
		logger:         log.Default(),
		backoffInitial: 500 * time.Millisecond,
		backoffMax:     30 * time.Second,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run consumes messages until ctx cancellation.
func (p *Processor) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		msg, err := p.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			p.logger.Printf("fetch error: %v", err)
			continue
		}

		decoded := decode(msg)
		if err := p.handle(ctx, decoded); err != nil {
			return err
		}
		p.logger.Printf("processed (topic=%s offset=%d event=%s)", msg.Topic, msg.Offset, decoded.EventType())

		if err := p.reader.CommitMessages(ctx, msg); err != nil {
			p.logger.Printf("commit error: %v", err)
		}
	}
}

// handle runs the handler until it succeeds. It returns only the context
// error, in which case the message stays uncommitted for redelivery.
func (p *Processor) handle(ctx context.Context, msg Message) error {
	delay := p.backoffInitial
	for attempt := 1; ; attempt++ {
		err := p.handler.Handle(ctx, msg)
		if err == nil {
			return nil
		}
		RecordFailed(msg)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		p.logger.Printf("handler error (topic=%s offset=%d attempt=%d, retrying in %s): %v", msg.Topic, msg.Offset, attempt, delay, err)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay = min(delay*2, p.backoffMax)
	}
}

func decode(msg kafka.Message) Message {
	decoded := Message{
		Topic:     msg.Topic,
		Partition: msg.Partition,
		Offset:    msg.Offset,
		Key:       msg.Key,
		Payload:   append(json.RawMessage{}, msg.Value...),
		Timestamp: msg.Time,
		Headers:   make(map[string]string, len(msg.Headers)),
	}
	for _, header := range msg.Headers {
		decoded.Headers[header.Key] = string(header.Value)
	}
	return decoded
}
