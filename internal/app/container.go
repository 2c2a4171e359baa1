package app

import (
	"context"
	"fmt"

	"connectus/internal/config"
	"connectus/internal/database"
	"connectus/internal/database/migration"
	dbpostgres "connectus/internal/database/postgres"
	"connectus/internal/domain/payment"
	"connectus/internal/infrastructure/assistant"
	"connectus/internal/infrastructure/cache"
	"connectus/internal/infrastructure/nlp"
	"connectus/internal/infrastructure/solana"
	"connectus/internal/infrastructure/storage"
	"connectus/internal/pkg/jwt"
	"connectus/internal/ws"

	"go.uber.org/zap"
)

// Container owns every long-lived dependency. It is assembled once at
// startup and torn down in Close.
type Container struct {
	Config config.Config
	Logger *zap.Logger

	DB        database.DB
	Cache     *cache.Redis
	JWT       jwt.Service
	Verifier  payment.Verifier
	Responder assistant.Responder
	Extractor nlp.TermExtractor
	Resumes   *storage.ResumeStore
	Hub       *ws.Hub
}

func NewContainer(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := migration.Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	resumes, err := storage.NewResumeStore(cfg.Upload.Dir)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("prepare upload dir: %w", err)
	}

	rpc := solana.NewClient(cfg.Solana.RPCURL, cfg.Solana.RequestTimeout, logger)

	var responder assistant.Responder
	if cfg.Assistant.APIKey != "" {
		gemini, err := assistant.NewGemini(ctx, cfg.Assistant.APIKey, cfg.Assistant.Model)
		if err != nil {
			logger.Warn("assistant disabled", zap.Error(err))
		} else {
			responder = gemini
		}
	} else {
		logger.Warn("assistant disabled", zap.String("reason", "no api key"))
	}

	return &Container{
		Config:    cfg,
		Logger:    logger,
		DB:        db,
		Cache:     cache.NewRedis(logger),
		JWT:       jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret, cfg.JWT.AccessExpiresIn, cfg.JWT.RefreshExpiresIn),
		Verifier:  solana.NewTransferVerifier(rpc, logger),
		Responder: responder,
		Extractor: nlp.NewProseExtractor(),
		Resumes:   resumes,
		Hub:       ws.NewHub(logger),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
