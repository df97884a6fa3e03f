package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/centai/centai/internal/config"
	"github.com/centai/centai/internal/core/ports"
	"github.com/centai/centai/internal/core/usecase"
	"github.com/centai/centai/internal/infrastructure/llm/ollama"
	"github.com/centai/centai/internal/infrastructure/resilience"
	"github.com/centai/centai/internal/infrastructure/verify"
	"github.com/centai/centai/internal/kb"
	"github.com/centai/centai/internal/observability/logging"
	"github.com/centai/centai/internal/observability/metrics"
)

type App struct {
	Config config.Config
	Logger *slog.Logger

	Metrics *metrics.ServerMetrics
	ChatUC  ports.ChatService
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	logger := logging.NewJSONLogger("centai-api", cfg.LogLevel)

	source := kb.NewLazy(func() (*kb.KnowledgeBase, error) {
		k, err := kb.LoadFile(cfg.KBPath)
		if err != nil {
			return nil, err
		}
		if cfg.FacultyXLSXPath != "" {
			rows, err := kb.ImportFacultyXLSX(cfg.FacultyXLSXPath)
			if err != nil {
				return nil, fmt.Errorf("import faculty sheet: %w", err)
			}
			k = k.WithExtraFaculty(rows)
		}
		return k, nil
	})

	// Fail fast on a broken knowledge base instead of on the first request.
	k, err := source.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load knowledge base: %w", err)
	}
	logger.Info("knowledge base loaded",
		"path", cfg.KBPath,
		"faculty", len(k.Faculty),
		"campuses", len(k.Campuses))

	exec := resilience.NewExecutor(resilience.DefaultConfig())

	var generator ports.AnswerGenerator
	if cfg.ProviderEnabled {
		generator = ollama.New(cfg.OllamaURL, cfg.OllamaChatModel, exec)
	}

	var verifier ports.SourceVerifier
	if cfg.VerifyOnline {
		verifier = verify.New(k.SourceDomains, exec)
	}

	serverMetrics := metrics.NewServerMetrics("centai-api")

	chatUC := usecase.NewChatUseCase(source, generator, verifier, serverMetrics, logger, usecase.ChatConfig{
		ProviderName:    "ollama",
		ProviderTimeout: time.Duration(cfg.ProviderTimeoutSeconds) * time.Second,
		VerifyTimeout:   time.Duration(cfg.VerifyTimeoutSeconds) * time.Second,
	})

	return &App{
		Config:  cfg,
		Logger:  logger,
		Metrics: serverMetrics,
		ChatUC:  chatUC,
	}, nil
}
