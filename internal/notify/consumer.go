package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/hireloop/interviewd/pkg/errors"
	"github.com/hireloop/interviewd/pkg/logger"
)

// NewConsumer builds the delivery worker reading events off the
// notification topic and fanning them out to recipients.
func NewConsumer(cfg Config, sender Sender, log logger.Logger) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:     cfg.Kafka.Brokers,
			Topic:       cfg.Kafka.Topic,
			GroupID:     cfg.Kafka.Group,
			MaxAttempts: 3,
		}),
		sender: sender,
		log:    log.With("notify_consumer"),
	}
}

type Consumer struct {
	reader *kafka.Reader
	sender Sender
	log    logger.Logger
}

func (c *Consumer) Run(ctx context.Context) {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			c.log.Error(errors.WrapFail(err, "fetch message"))
			continue
		}

		var event Event
		err = json.Unmarshal(msg.Value, &event)
		if err != nil {
			c.log.Warn(errors.WrapFail(err, "decode event"))
		} else {
			c.deliver(ctx, event)
		}

		err = c.reader.CommitMessages(ctx, msg)
		if err != nil {
			c.log.Error(errors.WrapFail(err, "commit message"))
		}
	}
}

func (c *Consumer) Close() error {
	return errors.WrapFail(c.reader.Close(), "close kafka reader")
}

func (c *Consumer) deliver(ctx context.Context, event Event) {
	text := render(event)

	for _, userID := range event.Recipients {
		err := c.sender.Send(ctx, userID, text)
		if err != nil {
			c.log.Warn(errors.WrapFailf(err, "deliver %s to %s", event.Kind, userID))
		}
	}
}

func render(event Event) string {
	span := ""
	if start, ok := event.Payload["start"].(string); ok {
		span = " at " + start
	}

	switch event.Kind {
	case KindScheduled:
		return fmt.Sprintf("Interview %s has been scheduled%s", event.InterviewID, span)
	case KindConfirmed:
		return fmt.Sprintf("Interview %s is confirmed by both sides%s", event.InterviewID, span)
	case KindRescheduled:
		return fmt.Sprintf("Interview %s has been moved%s", event.InterviewID, span)
	case KindCancelled:
		return fmt.Sprintf("Interview %s has been cancelled", event.InterviewID)
	default:
		return fmt.Sprintf("Interview %s: %s (%s)", event.InterviewID, event.Kind, time.Now().UTC().Format(time.RFC3339))
	}
}
