package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/hireloop/interviewd/pkg/errors"
	"github.com/hireloop/interviewd/pkg/logger"
)

// NewKafkaGateway publishes events to the notification topic. Errors
// are logged and swallowed: the scheduling operation already committed.
func NewKafkaGateway(cfg Config, log logger.Logger) *KafkaGateway {
	return &KafkaGateway{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Kafka.Brokers...),
			Topic:        cfg.Kafka.Topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			WriteTimeout: 5 * time.Second,
		},
		log: log.With("kafka_gateway"),
	}
}

type KafkaGateway struct {
	writer *kafka.Writer
	log    logger.Logger
}

func (g *KafkaGateway) Notify(ctx context.Context, event Event) {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.At.IsZero() {
		event.At = time.Now().UTC()
	}

	value, err := json.Marshal(event)
	if err != nil {
		g.log.Error(errors.WrapFail(err, "marshal event"))
		return
	}

	err = g.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.InterviewID),
		Value: value,
	})
	if err != nil {
		g.log.Error(errors.WrapFailf(err, "publish %s event", event.Kind))
	}
}

func (g *KafkaGateway) Close() error {
	return errors.WrapFail(g.writer.Close(), "close kafka writer")
}
