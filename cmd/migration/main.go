package main

import (
	"flag"
	"log"
	"os"

	"github.com/hugohenrick/gestao-varejo/internal/infrastructure/database"
	"github.com/hugohenrick/gestao-varejo/pkg/config"
	"github.com/hugohenrick/gestao-varejo/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	down := flag.Int("down", 0, "quantidade de migrações a desfazer")
	flag.Parse()

	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	zapLogger, err := logger.NewLogger(logger.Config{
		Level:       os.Getenv("LOG_LEVEL"),
		Environment: os.Getenv("APP_ENV"),
		ServiceName: "gestao-varejo-migration",
	})
	if err != nil {
		log.Fatalf("Erro ao inicializar logger: %v", err)
	}
	defer zapLogger.Sync()

	dbURL := config.LoadDatabase().ConnectionString()
	if *down > 0 {
		err = database.RollbackMigrations(dbURL, *down, zapLogger)
	} else {
		err = database.RunMigrations(dbURL, zapLogger)
	}
	if err != nil {
		zapLogger.Error("falha nas migrações", "error", err)
		return
	}

	log.Println("Migrações executadas com sucesso!")
}
