package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Astemirdum/bookhaven/pkg/circuit_breaker"
	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

const RecordsTopic = "bookhaven.records"

type Config struct {
	Enable bool     `yaml:"enable" envconfig:"KAFKA_ENABLE"`
	Addrs  []string `yaml:"addrs" envconfig:"KAFKA_ADDRS"`
	Topic  string   `yaml:"topic" envconfig:"KAFKA_TOPIC"`
}

// RecordEvent is published once a record has been persisted.
type RecordEvent struct {
	Collection string    `json:"collection"`
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Timestamp  time.Time `json:"timestamp"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true
	defaultCfg.Producer.Retry.Max = 3

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

type Publisher interface {
	Publish(ctx context.Context, event RecordEvent) error
	Close() error
}

// NewPublisher returns a no-op publisher when Kafka is disabled.
func NewPublisher(cfg Config, log *zap.Logger) (Publisher, error) {
	if !cfg.Enable {
		return NewNopPublisher(), nil
	}
	producer, err := NewProducer(cfg)
	if err != nil {
		return nil, err
	}
	return NewProducerPublisher(producer, cfg.Topic, log), nil
}

type producerPublisher struct {
	producer sarama.SyncProducer
	topic    string
	cb       circuit_breaker.CircuitBreaker
	log      *zap.Logger
}

func NewProducerPublisher(producer sarama.SyncProducer, topic string, log *zap.Logger) *producerPublisher {
	if topic == "" {
		topic = RecordsTopic
	}
	return &producerPublisher{
		producer: producer,
		topic:    topic,
		cb:       circuit_breaker.New(10, 30*time.Second, 0.5, 3),
		log:      log.Named("publisher"),
	}
}

func (p *producerPublisher) Publish(_ context.Context, event RecordEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.Collection),
		Value: sarama.ByteEncoder(data),
	}
	return p.cb.Call(func() error {
		partition, offset, err := p.producer.SendMessage(msg)
		if err != nil {
			return err
		}
		p.log.Debug("event published",
			zap.String("collection", event.Collection),
			zap.String("id", event.ID),
			zap.Int32("partition", partition),
			zap.Int64("offset", offset))
		return nil
	})
}

func (p *producerPublisher) Close() error {
	return p.producer.Close()
}

type nopPublisher struct{}

func NewNopPublisher() Publisher { return nopPublisher{} }

func (nopPublisher) Publish(context.Context, RecordEvent) error { return nil }

func (nopPublisher) Close() error { return nil }
