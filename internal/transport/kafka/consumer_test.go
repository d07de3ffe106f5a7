package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/require"

	testlog "service-freight-match/internal/testutil"
)

type fakeSession struct {
	ctx context.Context

	mu     sync.Mutex
	marked int
}

func (s *fakeSession) Context() context.Context { return s.ctx }

func (s *fakeSession) MarkMessage(*sarama.ConsumerMessage, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marked++
}

func (s *fakeSession) MarkOffset(string, int32, int64, string)  {}
func (s *fakeSession) Commit()                                  {}
func (s *fakeSession) ResetOffset(string, int32, int64, string) {}
func (s *fakeSession) Claims() map[string][]int32               { return nil }
func (s *fakeSession) MemberID() string                         { return "" }
func (s *fakeSession) GenerationID() int32                      { return 0 }

func (s *fakeSession) MarkedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.marked
}

type fakeClaim struct {
	ch chan *sarama.ConsumerMessage
}

func (c fakeClaim) Topic() string              { return "ratings.submitted" }
func (c fakeClaim) Partition() int32           { return 0 }
func (c fakeClaim) InitialOffset() int64       { return 0 }
func (c fakeClaim) HighWaterMarkOffset() int64 { return 0 }
func (c fakeClaim) Messages() <-chan *sarama.ConsumerMessage {
	return c.ch
}

func hasMsg(entries []testlog.Entry, msg string) bool {
	for _, e := range entries {
		if e.Msg == msg {
			return true
		}
	}
	return false
}

func claimWith(values ...[]byte) fakeClaim {
	ch := make(chan *sarama.ConsumerMessage, len(values))
	for _, v := range values {
		ch <- &sarama.ConsumerMessage{Value: v}
	}
	close(ch)
	return fakeClaim{ch: ch}
}

func TestNewConsumer_UnconfiguredReturnsNil(t *testing.T) {
	t.Parallel()

	c, err := NewConsumer(testlog.New().Logger(), nil, "g", "t", nil)
	require.NoError(t, err)
	require.Nil(t, c)

	c, err = NewConsumer(testlog.New().Logger(), []string{"localhost:9092"}, "g", "  ", nil)
	require.NoError(t, err)
	require.Nil(t, c)

	require.NoError(t, c.Run(context.Background()), "nil consumer Run is a no-op")
	require.NoError(t, c.Close())
}

func TestConsumeClaim_BadJSON_Skips(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	c := &Consumer{
		logger: rec.Logger(),
		handler: func(context.Context, RatingEvent) error {
			t.Fatal("handler must not be called")
			return nil
		},
	}
	h := &groupHandler{c: c}

	sess := &fakeSession{ctx: context.Background()}
	err := h.ConsumeClaim(sess, claimWith([]byte("not-json")))
	require.NoError(t, err)
	require.Equal(t, 1, sess.MarkedCount())

	require.True(t, hasMsg(rec.Entries(), "kafka: bad json"))
}

func TestConsumeClaim_MissingAccountIDs_Skips(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	calls := 0
	c := &Consumer{
		logger: rec.Logger(),
		handler: func(context.Context, RatingEvent) error {
			calls++
			return nil
		},
	}
	h := &groupHandler{c: c}

	b, _ := json.Marshal(RatingEvent{RaterID: "   ", RatedID: "acc-2", Score: 5})

	sess := &fakeSession{ctx: context.Background()}
	err := h.ConsumeClaim(sess, claimWith(b))
	require.NoError(t, err)
	require.Equal(t, 1, sess.MarkedCount())
	require.Equal(t, 0, calls)

	require.True(t, hasMsg(rec.Entries(), "kafka: rating event missing account ids"))
}

func TestConsumeClaim_PermanentError_SkipsAndMarks(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	c := &Consumer{
		logger: rec.Logger(),
		handler: func(context.Context, RatingEvent) error {
			return Permanent(errors.New("self-rating"))
		},
	}
	h := &groupHandler{c: c}

	b, _ := json.Marshal(RatingEvent{RaterID: "acc-1", RatedID: "acc-1", Score: 5, CreatedAt: time.Now()})

	sess := &fakeSession{ctx: context.Background()}
	err := h.ConsumeClaim(sess, claimWith(b))
	require.NoError(t, err)
	require.Equal(t, 1, sess.MarkedCount())

	require.True(t, hasMsg(rec.Entries(), "kafka: dropping unprocessable rating event"))
}

func TestConsumeClaim_TransientError_ReturnsForRetry(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	wantErr := errors.New("db down")
	c := &Consumer{
		logger: rec.Logger(),
		handler: func(context.Context, RatingEvent) error {
			return wantErr
		},
	}
	h := &groupHandler{c: c}

	b, _ := json.Marshal(RatingEvent{RaterID: "acc-1", RatedID: "acc-2", Score: 4})

	sess := &fakeSession{ctx: context.Background()}
	err := h.ConsumeClaim(sess, claimWith(b))
	require.ErrorIs(t, err, wantErr)
	require.Equal(t, 0, sess.MarkedCount(), "failed message must not be marked")
}

func TestPermanentError_Unwrap(t *testing.T) {
	t.Parallel()

	inner := errors.New("bad score")
	err := Permanent(inner)
	require.ErrorIs(t, err, inner)
	require.Equal(t, "bad score", err.Error())
	require.Equal(t, "permanent error", PermanentError{}.Error())
}
