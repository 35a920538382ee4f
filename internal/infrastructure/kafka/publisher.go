package kafka

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl"
	"github.com/segmentio/kafka-go/sasl/plain"
	"github.com/segmentio/kafka-go/sasl/scram"
	"github.com/vendora/marketplace-service/internal/domain"
)

// DefaultKafkaPublisher is the plaintext publisher used in local setups.
type DefaultKafkaPublisher struct {
	writer *kafka.Writer
}

func NewDefaultKafkaPublisher(brokers []string) *DefaultKafkaPublisher {
	return &DefaultKafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (k *DefaultKafkaPublisher) Publish(topic string, msgs ...domain.Message) error {
	var km []kafka.Message
	for _, m := range msgs {
		km = append(km, kafka.Message{
			Key:   m.Key,
			Value: m.Value,
			Time:  time.Now(),
			Topic: topic,
		})
	}
	return k.writer.WriteMessages(context.Background(), km...)
}

// KafkaConfig carries the SASL/TLS settings for managed clusters.
type KafkaConfig struct {
	Brokers    []string
	Username   string
	Password   string
	Mechanism  string // "plain", "scram-sha-256", "scram-sha-512"
	TLSEnabled bool
}

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(cfg KafkaConfig) (*KafkaPublisher, error) {
	transport := &kafka.Transport{}

	if cfg.Username != "" {
		var mechanism sasl.Mechanism
		var err error
		switch cfg.Mechanism {
		case "", "plain":
			mechanism = plain.Mechanism{Username: cfg.Username, Password: cfg.Password}
		case "scram-sha-256":
			mechanism, err = scram.Mechanism(scram.SHA256, cfg.Username, cfg.Password)
		case "scram-sha-512":
			mechanism, err = scram.Mechanism(scram.SHA512, cfg.Username, cfg.Password)
		default:
			return nil, fmt.Errorf("unknown sasl mechanism %q", cfg.Mechanism)
		}
		if err != nil {
			return nil, fmt.Errorf("init sasl mechanism: %w", err)
		}
		transport.SASL = mechanism
	}

	if cfg.TLSEnabled {
		transport.TLS = &tls.Config{}
	}

	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:      kafka.TCP(cfg.Brokers...),
			Balancer:  &kafka.LeastBytes{},
			Transport: transport,
		},
	}, nil
}

func (k *KafkaPublisher) Publish(topic string, msgs ...domain.Message) error {
	var km []kafka.Message
	for _, m := range msgs {
		km = append(km, kafka.Message{
			Key:   m.Key,
			Value: m.Value,
			Time:  time.Now(),
			Topic: topic,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return k.writer.WriteMessages(ctx, km...)
}

// PublishJSON marshals the event and publishes it keyed by the given key.
func PublishJSON(p domain.PublisherPort, topic, key string, event any) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.Publish(topic, domain.Message{Key: []byte(key), Value: v})
}
