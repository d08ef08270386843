package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"example.com/fitplan/internal/domain"
	"example.com/fitplan/internal/events"
	"example.com/fitplan/internal/normalize"
)

// ProgramComputer is the slice of the program service the handler needs.
type ProgramComputer interface {
	ComputeProgram(ctx context.Context, input domain.ComputeProgramInput) (*domain.Program, error)
}

// QuestionnaireSubmitted is the payload of a questionnaire.submitted event.
type QuestionnaireSubmitted struct {
	SubmissionID string            `json:"submission_id"`
	TenantID     string            `json:"tenant_id"`
	UserID       string            `json:"user_id"`
	Answers      normalize.Answers `json:"answers"`
}

// QuestionnaireHandler computes and stores a program for every submission.
// Invalid or rejected submissions are counted and dropped; only
// infrastructure failures surface as errors.
type QuestionnaireHandler struct {
	service        ProgramComputer
	defaultVariant domain.Variant
	logger         *log.Logger
}

// NewQuestionnaireHandler constructs the handler.
func NewQuestionnaireHandler(service ProgramComputer, defaultVariant domain.Variant) *QuestionnaireHandler {
	return &QuestionnaireHandler{service: service, defaultVariant: defaultVariant, logger: log.Default()}
}

// Handle processes questionnaire.submitted events and ignores the rest.
func (h *QuestionnaireHandler) Handle(ctx context.Context, msg Message) error {
	if msg.EventType() != events.EventQuestionnaireSubmitted {
		RecordOutcome(msg, OutcomeSkipped)
		return nil
	}

	payload := msg.Payload
	// Confluent wire format: magic byte plus 4-byte schema id.
	if len(payload) >= 5 && payload[0] == 0x00 {
		payload = payload[5:]
	}
	var evt QuestionnaireSubmitted
	if err := json.Unmarshal(payload, &evt); err != nil {
		RecordOutcome(msg, OutcomeInvalid)
		h.logger.Printf("dropping undecodable submission (offset=%d): %v", msg.Offset, err)
		return nil
	}
	if strings.TrimSpace(evt.TenantID) == "" {
		evt.TenantID = msg.Headers["tenant_id"]
	}

	program, err := h.service.ComputeProgram(ctx, domain.ComputeProgramInput{
		TenantID: evt.TenantID,
		UserID:   evt.UserID,
		Request:  normalize.Normalize(evt.Answers, h.defaultVariant),
	})
	switch {
	case err == nil:
		RecordOutcome(msg, OutcomeComputed)
		h.logger.Printf("program %s computed for submission %s", program.ID, evt.SubmissionID)
		return nil
	case errors.Is(err, domain.ErrInvalidRequest):
		RecordOutcome(msg, OutcomeInvalid)
		h.logger.Printf("submission %s invalid: %v", evt.SubmissionID, err)
		return nil
	case errors.Is(err, domain.ErrRejected):
		RecordOutcome(msg, OutcomeRejected)
		h.logger.Printf("submission %s rejected: %v", evt.SubmissionID, err)
		return nil
	default:
		return fmt.Errorf("compute program for submission %s: %w", evt.SubmissionID, err)
	}
}
