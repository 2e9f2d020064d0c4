package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config reúne toda a configuração da aplicação
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Session  SessionConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Log      LogConfig
	Metrics  MetricsConfig
}

// ServerConfig contém as configurações do servidor HTTP
type ServerConfig struct {
	Port           string
	Env            string
	AllowedOrigins []string
}

// DatabaseConfig contém as configurações para conexão com o PostgreSQL
type DatabaseConfig struct {
	URL             string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int32
	MinConnections  int32
	MaxConnLifetime time.Duration
}

// JWTConfig contém as configurações dos tokens
type JWTConfig struct {
	SecretKey  string
	Expiration time.Duration
}

// SessionConfig controla o armazenamento das sessões
type SessionConfig struct {
	// Store pode ser "redis" ou "memory"
	Store string
	// RefreshInterval é a idade máxima dos dados do usuário em cache
	RefreshInterval time.Duration
}

// RedisConfig contém as configurações do Redis
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// KafkaConfig contém as configurações de publicação de eventos.
// Sem brokers os eventos são descartados.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// LogConfig contém as configurações de log
type LogConfig struct {
	Level string
}

// MetricsConfig contém as configurações de métricas
type MetricsConfig struct {
	Prefix string
}

// Load lê a configuração das variáveis de ambiente.
// O arquivo .env deve ser carregado antes, no main.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnv("SERVER_PORT", "8080"),
			Env:            getEnv("APP_ENV", "development"),
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Database: LoadDatabase(),
		JWT: JWTConfig{
			SecretKey:  os.Getenv("JWT_SECRET_KEY"),
			Expiration: time.Duration(getEnvAsInt("JWT_EXPIRATION_HOURS", 24)) * time.Hour,
		},
		Session: SessionConfig{
			Store:           getEnv("SESSION_STORE", "redis"),
			RefreshInterval: getEnvAsDuration("SESSION_REFRESH_INTERVAL", 5*time.Minute),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Kafka: KafkaConfig{
			Brokers: getEnvAsList("KAFKA_BROKERS", nil),
			Topic:   getEnv("KAFKA_STOCK_TOPIC", "stock-movements"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Metrics: MetricsConfig{
			Prefix: getEnv("METRICS_PREFIX", "gestao_varejo"),
		},
	}

	if cfg.JWT.SecretKey == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY não configurada")
	}

	return cfg, nil
}

// LoadDatabase lê apenas a configuração do banco; usado pelo comando de migração
func LoadDatabase() DatabaseConfig {
	return DatabaseConfig{
		URL:             os.Getenv("DATABASE_URL"),
		Host:            getEnv("DB_HOST", "localhost"),
		Port:            getEnv("DB_PORT", "5432"),
		User:            getEnv("DB_USER", "postgres"),
		Password:        getEnv("DB_PASSWORD", "postgres"),
		Name:            getEnv("DB_NAME", "gestao_varejo"),
		SSLMode:         getEnv("DB_SSL_MODE", "disable"),
		MaxConnections:  int32(getEnvAsInt("DB_MAX_CONNECTIONS", 10)),
		MinConnections:  int32(getEnvAsInt("DB_MIN_CONNECTIONS", 1)),
		MaxConnLifetime: getEnvAsDuration("DB_MAX_LIFETIME", time.Hour),
	}
}

// ConnectionString retorna a string de conexão para o PostgreSQL.
// DATABASE_URL tem prioridade sobre as variáveis individuais.
func (c DatabaseConfig) ConnectionString() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

// getEnv retorna o valor de uma variável de ambiente ou um valor padrão
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
