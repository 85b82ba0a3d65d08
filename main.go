// @title API Cronos
// @version 1.0
// @description Backend da plataforma de estudos Cronos.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"cronos_backend/internal/app"
	"cronos_backend/internal/config"
	"cronos_backend/pkg/configwatcher"
	"cronos_backend/pkg/logger"
	"flag"
	"log"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "executa a migração do banco e sai")
	migrate := flag.Bool("migrate", false, "força a migração do banco na subida")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *migrateOnly {
		log.Println("Migração concluída, encerrando")
		return
	}

	// recarrega a lista de chaves Gemini quando o arquivo muda
	go configwatcher.WatchConfig("configs/config.yaml", application.ApplyConfig)

	application.Run()
}
