package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("sem chave JWT retorna erro", func(t *testing.T) {
		t.Setenv("JWT_SECRET_KEY", "")
		if _, err := Load(); err == nil {
			t.Fatal("esperava erro sem JWT_SECRET_KEY")
		}
	})

	t.Run("valores padrão e listas", func(t *testing.T) {
		t.Setenv("JWT_SECRET_KEY", "segredo")
		t.Setenv("KAFKA_BROKERS", "kafka1:9092, kafka2:9092 ,")
		t.Setenv("SESSION_REFRESH_INTERVAL", "30s")
		t.Setenv("DATABASE_URL", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if len(cfg.Kafka.Brokers) != 2 || cfg.Kafka.Brokers[1] != "kafka2:9092" {
			t.Errorf("brokers inesperados: %v", cfg.Kafka.Brokers)
		}
		if cfg.Session.RefreshInterval != 30*time.Second {
			t.Errorf("intervalo de atualização = %v, esperado 30s", cfg.Session.RefreshInterval)
		}
		if cfg.JWT.Expiration != 24*time.Hour {
			t.Errorf("expiração = %v, esperado 24h", cfg.JWT.Expiration)
		}
	})
}

func TestConnectionString(t *testing.T) {
	c := DatabaseConfig{User: "u", Password: "p", Host: "h", Port: "5432", Name: "db", SSLMode: "disable"}
	want := "postgres://u:p@h:5432/db?sslmode=disable"
	if got := c.ConnectionString(); got != want {
		t.Errorf("ConnectionString() = %q, esperado %q", got, want)
	}

	c.URL = "postgres://outro"
	if got := c.ConnectionString(); got != "postgres://outro" {
		t.Errorf("DATABASE_URL deveria ter prioridade, obtido %q", got)
	}
}

func TestLoadDatabaseWithoutJWT(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_NAME", "loja")

	db := LoadDatabase()
	if db.Name != "loja" || db.Host != "localhost" {
		t.Errorf("configuração inesperada: %+v", db)
	}
}
