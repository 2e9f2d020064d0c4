package main

import (
	"log"

	"github.com/hugohenrick/gestao-varejo/pkg/config"
	"github.com/hugohenrick/gestao-varejo/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Erro ao carregar configuração: %v", err)
	}

	zapLogger, err := logger.NewLogger(logger.Config{
		Level:       cfg.Log.Level,
		Environment: cfg.Server.Env,
		ServiceName: "gestao-varejo-api",
	})
	if err != nil {
		log.Fatalf("Erro ao inicializar logger: %v", err)
	}
	defer zapLogger.Sync()

	// Criar aplicação
	app, err := NewApp(cfg, zapLogger)
	if err != nil {
		zapLogger.Error("falha ao inicializar aplicação", "error", err)
		return
	}
	defer app.Close()

	// Iniciar o servidor
	if err := app.Start(); err != nil {
		zapLogger.Error("servidor encerrado com erro", "error", err)
	}
}
