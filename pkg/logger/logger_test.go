package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := &ZapLogger{sugar: zap.New(core).Sugar()}

	l.With("tenant_id", "T1").Warn("estoque baixo", "product_id", "P1")
	l.Debug("descartado pelo nível")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("entradas = %d, esperado 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["tenant_id"] != "T1" || fields["product_id"] != "P1" {
		t.Errorf("campos inesperados: %v", fields)
	}
	if entries[0].Level != zapcore.WarnLevel {
		t.Errorf("nível = %v", entries[0].Level)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"WARNING": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, esperado %v", in, got, want)
		}
	}
}
