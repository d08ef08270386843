package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
)

func TestProcessorCommitsMessages(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	payload := json.RawMessage(`{"submission_id":"s-1"}`)
	msg := kafka.Message{
		Topic:     "questionnaire_events",
		Partition: 0,
		Offset:    12,
		Value:     payload,
		Time:      time.Now().UTC(),
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("questionnaire.submitted")},
		},
	}

	reader := &stubReader{msgs: []kafka.Message{msg}, errAfter: context.Canceled}
	handler := &RecordingHandler{}
	proc := NewProcessor(reader, handler, WithLogger(log.New(io.Discard, "", 0)))

	err := proc.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 1, handler.count)
	require.Equal(t, 1, reader.commitCount)
	require.Equal(t, "questionnaire.submitted", handler.last.EventType())
	require.JSONEq(t, string(payload), string(handler.last.Payload))
	require.Equal(t, int64(12), handler.last.Offset)
}

func TestProcessorRetriesUntilHandlerSucceeds(t *testing.T) {
	msgs := []kafka.Message{
		{Topic: "questionnaire_events", Offset: 1, Value: []byte(`{}`)},
		{Topic: "questionnaire_events", Offset: 2, Value: []byte(`{}`)},
	}
	reader := &stubReader{msgs: msgs, errAfter: context.Canceled}
	handler := &RecordingHandler{err: errors.New("postgres down"), failures: 2}
	proc := NewProcessor(reader, handler,
		WithLogger(log.New(io.Discard, "", 0)),
		WithRetryBackoff(time.Millisecond, 2*time.Millisecond),
	)

	err := proc.Run(context.Background())
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 4, handler.count)
	require.Equal(t, 2, reader.commitCount)
	require.Equal(t, []int64{1, 2}, reader.committed)
}

func TestProcessorDoesNotCommitFailedMessageOnShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	msgs := []kafka.Message{{Topic: "questionnaire_events", Offset: 7, Value: []byte(`{}`)}}
	reader := &stubReader{msgs: msgs, errAfter: context.Canceled}
	handler := &RecordingHandler{err: errors.New("postgres down"), failures: -1}
	handler.onCall = func(n int) {
		if n == 3 {
			cancel()
		}
	}
	proc := NewProcessor(reader, handler,
		WithLogger(log.New(io.Discard, "", 0)),
		WithRetryBackoff(time.Millisecond, time.Millisecond),
	)

	err := proc.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 3, handler.count)
	require.Zero(t, reader.commitCount)
}

type stubReader struct {
	msgs        []kafka.Message
	idx         int
	commitCount int
	committed   []int64
	errAfter    error
}

func (r *stubReader) FetchMessage(context.Context) (kafka.Message, error) {
	if r.idx >= len(r.msgs) {
		return kafka.Message{}, r.errAfter
	}
	msg := r.msgs[r.idx]
	r.idx++
	return msg, nil
}

func (r *stubReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.commitCount++
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func (r *stubReader) Close() error { return nil }

// RecordingHandler returns err for the first failures calls (every call
// when failures is negative), then nil.
type RecordingHandler struct {
	count    int
	last     Message
	err      error
	failures int
	onCall   func(n int)
}

var _ Handler = (*RecordingHandler)(nil)

func (h *RecordingHandler) Handle(_ context.Context, msg Message) error {
	h.count++
	h.last = msg
	if h.onCall != nil {
		h.onCall(h.count)
	}
	if h.err != nil && (h.failures < 0 || h.count <= h.failures) {
		return h.err
	}
	return nil
}
