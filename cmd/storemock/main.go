package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/trabalha-floriano/portal-backend/internal/db"
	"github.com/trabalha-floriano/portal-backend/internal/logging"
	"github.com/trabalha-floriano/portal-backend/internal/storemock"
)

func main() {
	_ = godotenv.Load()

	logger, err := logging.New()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	dbPath := os.Getenv("STOREMOCK_DB_PATH")
	if dbPath == "" {
		dbPath = "./storemock.db"
	}

	gdb, err := db.Connect(dbPath)
	if err != nil {
		logger.Fatal("storemock: falha ao abrir o banco", zap.Error(err))
	}

	st, err := storemock.New(gdb)
	if err != nil {
		logger.Fatal("storemock: falha ao migrar", zap.Error(err))
	}

	seedPath := os.Getenv("STOREMOCK_SEED_FILE")
	if seedPath == "" {
		seedPath = "./db.json"
	}
	if err := st.Seed(seedPath, logger); err != nil {
		logger.Fatal("storemock: falha ao carregar o seed", zap.Error(err))
	}

	app := fiber.New()
	app.Use(cors.New())

	storemock.NewHandler(st, logger).Register(app)

	port := os.Getenv("STOREMOCK_PORT")
	if port == "" {
		port = "3000"
	}

	logger.Info("storemock no ar", zap.String("port", port), zap.String("db", dbPath))
	if err := app.Listen(":" + port); err != nil {
		logger.Fatal("storemock encerrou", zap.Error(err))
	}
}
