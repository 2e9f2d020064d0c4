package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func TestKafkaPublisher(t *testing.T) {
	t.Run("publica JSON com chave e tipo", func(t *testing.T) {
		w := &fakeWriter{}
		p := newKafkaPublisher(w, "stock_movement")

		err := p.Publish(context.Background(), "P1", map[string]int{"delta": -3})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if len(w.messages) != 1 {
			t.Fatalf("mensagens = %d, esperado 1", len(w.messages))
		}

		msg := w.messages[0]
		if string(msg.Key) != "P1" {
			t.Errorf("chave = %s", msg.Key)
		}
		if len(msg.Headers) != 1 || string(msg.Headers[0].Value) != "stock_movement" {
			t.Errorf("cabeçalhos inesperados: %+v", msg.Headers)
		}

		var body map[string]int
		if err := json.Unmarshal(msg.Value, &body); err != nil || body["delta"] != -3 {
			t.Errorf("corpo inesperado: %s", msg.Value)
		}
	})

	t.Run("falha do broker é retornada", func(t *testing.T) {
		base := errors.New("broker indisponível")
		p := newKafkaPublisher(&fakeWriter{err: base}, "stock_movement")
		if err := p.Publish(context.Background(), "P1", 1); !errors.Is(err, base) {
			t.Errorf("esperava erro do broker, obtido %v", err)
		}
	})
}
