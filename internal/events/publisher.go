// Package events publishes program lifecycle events to Kafka.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"example.com/fitplan/internal/domain"
)

// Event types carried in the event_type header.
const (
	EventProgramComputed        = "program.computed"
	EventQuestionnaireSubmitted = "questionnaire.submitted"
)

// ProgramComputed is the payload written for every stored program.
type ProgramComputed struct {
	ProgramID      string          `json:"program_id"`
	TenantID       string          `json:"tenant_id"`
	UserID         string          `json:"user_id"`
	Variant        string          `json:"variant"`
	BMR            int             `json:"bmr"`
	TDEE           int             `json:"tdee"`
	TargetCalories int             `json:"target_calories"`
	Macros         domain.MacroSet `json:"macros"`
	Flags          []string        `json:"flags"`
	ComputedAt     time.Time       `json:"computed_at"`
}

// NewProgramComputed builds the event payload for a stored program.
func NewProgramComputed(p domain.Program) ProgramComputed {
	return ProgramComputed{
		ProgramID:      p.ID,
		TenantID:       p.TenantID,
		UserID:         p.UserID,
		Variant:        string(p.Variant),
		BMR:            p.Result.BMR,
		TDEE:           p.Result.TDEE,
		TargetCalories: p.Result.TargetCalories,
		Macros:         p.Result.Macros,
		Flags:          p.Result.Flags.Strings(),
		ComputedAt:     p.CreatedAt,
	}
}

type messageWriter interface {
	WriteMessages(context.Context, ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes program events to a single topic.
type KafkaPublisher struct {
	writer messageWriter
}

// NewKafkaPublisher constructs a synchronous publisher for topic.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return newKafkaPublisher(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		RequiredAcks:           kafka.RequireAll,
		Compression:            kafka.Snappy,
		AllowAutoTopicCreation: true,
		BatchTimeout:           50 * time.Millisecond,
	})
}

func newKafkaPublisher(w messageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: w}
}

// PublishProgramComputed writes one record keyed by user ID so a user's
// programs stay ordered within a partition.
func (p *KafkaPublisher) PublishProgramComputed(ctx context.Context, program domain.Program) error {
	body, err := json.Marshal(NewProgramComputed(program))
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(program.UserID),
		Value: body,
		Time:  program.CreatedAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(EventProgramComputed)},
			{Key: "tenant_id", Value: []byte(program.TenantID)},
		},
	})
}

// Close flushes and closes the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher drops events. Used when no topic is configured.
type NoopPublisher struct{}

// PublishProgramComputed performs no action.
func (NoopPublisher) PublishProgramComputed(context.Context, domain.Program) error { return nil }
