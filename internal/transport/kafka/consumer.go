package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/IBM/sarama"

	"service-freight-match/internal/logx"
)

// HandleFunc processes a single RatingEvent from Kafka.
type HandleFunc func(context.Context, RatingEvent) error

// Consumer wraps a Sarama consumer group and dispatches rating events to a
// handler.
type Consumer struct {
	group   sarama.ConsumerGroup
	topic   string
	handler HandleFunc
	logger  logx.Logger
}

// NewConsumer creates a new Kafka consumer. Returns (nil, nil) when Kafka is
// not configured so the worker can run without it.
func NewConsumer(logger logx.Logger, brokers []string, groupID, topic string, h HandleFunc) (*Consumer, error) {
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" || strings.TrimSpace(groupID) == "" {
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.Consumer.Offsets.Initial = sarama.OffsetOldest

	group, err := sarama.NewConsumerGroup(brokers, groupID, cfg)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		group:   group,
		topic:   topic,
		handler: h,
		logger:  logger,
	}, nil
}

// Run starts the consumer loop and blocks until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context) error {
	if c == nil {
		return nil
	}

	h := &groupHandler{c: c}

	for {
		if err := c.group.Consume(ctx, []string{c.topic}, h); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.logger.Error("kafka consume error", logx.Err(err))
			time.Sleep(time.Second)
			continue
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// Close shuts down the underlying consumer group.
func (c *Consumer) Close() error {
	if c == nil {
		return nil
	}
	return c.group.Close()
}

type groupHandler struct{ c *Consumer }

func (h *groupHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *groupHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *groupHandler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		var ev RatingEvent
		if err := json.Unmarshal(msg.Value, &ev); err != nil {
			h.c.logger.Warn("kafka: bad json", logx.Err(err))
			sess.MarkMessage(msg, "")
			continue
		}
		if strings.TrimSpace(ev.RaterID) == "" || strings.TrimSpace(ev.RatedID) == "" {
			h.c.logger.Warn("kafka: rating event missing account ids")
			sess.MarkMessage(msg, "")
			continue
		}

		if err := h.c.handler(sess.Context(), ev); err != nil {
			var perm PermanentError
			if errors.As(err, &perm) {
				h.c.logger.Warn("kafka: dropping unprocessable rating event",
					logx.String("rater_id", ev.RaterID),
					logx.String("rated_id", ev.RatedID),
					logx.Err(err),
				)
				sess.MarkMessage(msg, "")
				continue
			}
			h.c.logger.Error("kafka: handle failed, retry",
				logx.String("rater_id", ev.RaterID),
				logx.String("rated_id", ev.RatedID),
				logx.Err(err),
			)
			return err
		}

		sess.MarkMessage(msg, "")
	}
	return nil
}
