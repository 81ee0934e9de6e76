package broker

import (
	"context"
	"log/slog"

	"github.com/segmentio/kafka-go"
)

// KafkaPublisher appends change events to Kafka topics. The message key is
// the event's routing key, and the hash balancer pins every message sharing
// a key to the same partition so consumers see them in dispatch order.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireAll,
			AllowAutoTopicCreation: true,
		},
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, topic string, key, value []byte) error {
	err := p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   key,
		Value: value,
	})
	if err != nil {
		slog.Warn("kafka write error", slog.String("topic", topic), slog.Any("error", err))
		return err
	}
	slog.Debug("kafka message produced", slog.String("topic", topic), slog.String("key", string(key)))
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
