package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"disc-match/internal/config"
	"disc-match/internal/db"
	"disc-match/internal/domain"
	apihttp "disc-match/internal/http"
	"disc-match/internal/llm"
	"disc-match/internal/repository"
	"disc-match/internal/service"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	var respondentRepo repository.RespondentRepository
	switch cfg.StorageMode {
	case "memory":
		// Modo debil: datos solo en RAM, se pierden al reiniciar.
		logger.Warn("using in-memory storage, data will not survive restarts")
		respondentRepo = repository.NewMemoryRespondentRepository()
	default:
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer pool.Close()
		if err := db.Migrate(ctx, pool); err != nil {
			logger.Fatal("db migrate", zap.Error(err))
		}
		respondentRepo = repository.NewPgRespondentRepository(pool)
	}

	labels := domain.LabelsFor(cfg.LabelLocale)
	llmClient := llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, logger)

	assessmentSvc := service.NewAssessmentService(logger, respondentRepo, labels)
	matchSvc := service.NewMatchService(logger, respondentRepo, llmClient, time.Duration(cfg.LLMTimeoutSeconds)*time.Second)

	assessmentHandler := apihttp.NewAssessmentHandler(logger, assessmentSvc)
	matchHandler := apihttp.NewMatchHandler(logger, matchSvc)
	router := apihttp.NewRouter(logger, assessmentHandler, matchHandler, cfg.StorageMode)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server",
		zap.String("port", cfg.HTTPPort),
		zap.String("storage_mode", cfg.StorageMode),
	)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
