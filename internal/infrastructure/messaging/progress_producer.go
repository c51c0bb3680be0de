package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"retifica_os/internal/domain/entities"
	"retifica_os/internal/infrastructure/logger"
	"retifica_os/internal/usecase/interfaces"

	"github.com/IBM/sarama"
)

// ProducerConfig is the sarama configuration for the progress producer.
func ProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll

	return config
}

func NewSyncProducer(brokers []string) (sarama.SyncProducer, error) {
	p, err := sarama.NewSyncProducer(brokers, ProducerConfig())
	if err != nil {
		return nil, fmt.Errorf("create sync producer: %w", err)
	}
	return p, nil
}

// ProgressPublisher sends OrderProgressEvent messages keyed by order id, so
// events of one order stay on one partition.
type ProgressPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

var _ interfaces.IProgressPublisher = (*ProgressPublisher)(nil)

func NewProgressPublisher(producer sarama.SyncProducer, topic string) *ProgressPublisher {
	return &ProgressPublisher{producer: producer, topic: topic}
}

func (p *ProgressPublisher) PublishOrderProgress(ctx context.Context, e entities.OrderProgressEvent) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode progress event: %w", err)
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(e.OrderID),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		return fmt.Errorf("send to %s: %w", p.topic, err)
	}

	logger.L().Debug("[order][producer] progress event sent",
		logger.String("topic", p.topic),
		logger.String("order_id", e.OrderID),
		logger.String("action", e.Action),
		logger.Int64("offset", offset),
		logger.Int("partition", int(partition)),
	)
	return nil
}

func (p *ProgressPublisher) Close() error {
	return p.producer.Close()
}

// NoopPublisher drops events; used when no brokers are configured.
type NoopPublisher struct{}

var _ interfaces.IProgressPublisher = NoopPublisher{}

func (NoopPublisher) PublishOrderProgress(context.Context, entities.OrderProgressEvent) error {
	return nil
}
