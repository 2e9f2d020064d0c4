package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// messageWriter é satisfeito por *kafka.Writer
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher publica eventos JSON em um tópico do Kafka
type KafkaPublisher struct {
	writer    messageWriter
	eventType string
	timeout   time.Duration
}

// NewKafkaPublisher cria um publicador para o tópico informado
func NewKafkaPublisher(brokers []string, topic, eventType string) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
	return newKafkaPublisher(writer, eventType)
}

func newKafkaPublisher(writer messageWriter, eventType string) *KafkaPublisher {
	return &KafkaPublisher{
		writer:    writer,
		eventType: eventType,
		timeout:   5 * time.Second,
	}
}

// Publish envia payload com a chave informada; mensagens da mesma chave mantêm a ordem
func (p *KafkaPublisher) Publish(ctx context.Context, key string, payload any) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("falha ao serializar evento: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(p.eventType)},
		},
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("falha ao publicar evento no Kafka: %w", err)
	}
	return nil
}

// Close encerra o writer
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher descarta eventos; usado quando não há broker configurado
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, any) error { return nil }

func (NoopPublisher) Close() error { return nil }
