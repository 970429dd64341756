package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/parthdesai/billflow/internal/application/service"
	"github.com/parthdesai/billflow/internal/config"
	"github.com/parthdesai/billflow/internal/infrastructure/export"
	"github.com/parthdesai/billflow/internal/infrastructure/persistence/repository"
	httpserver "github.com/parthdesai/billflow/internal/interfaces/http"
	"github.com/parthdesai/billflow/pkg/database"
	"github.com/parthdesai/billflow/pkg/utils"
)

func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := utils.NewLogger(utils.LoggerConfig{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting BillFlow",
		zap.String("version", "1.0.0"),
		zap.Int("port", cfg.Server.Port))

	// Initialize database
	db, err := database.New(database.Config{
		Path:            cfg.Database.Path,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	migrator := database.NewMigrator(db, logger)
	if err := migrator.RunMigrations(cfg.Database.MigrationsDir); err != nil {
		logger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	// Create necessary directories
	if err := os.MkdirAll(cfg.Export.OutputDir, 0755); err != nil {
		logger.Fatal("Failed to create export directory", zap.Error(err))
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, logger)
	sessionRepo := repository.NewSessionRepository(db, logger)
	profileRepo := repository.NewProfileRepository(db, logger)
	documentRepo := repository.NewDocumentRepository(db, logger)

	// Initialize exporters
	pdfExporter, err := export.NewPDFExporter(cfg.Export.OutputDir, logger)
	if err != nil {
		logger.Fatal("Failed to initialize PDF exporter", zap.Error(err))
	}
	docExporter := export.NewPNGExporter(pdfExporter, logger)
	excelExporter, err := export.NewExcelExporter(cfg.Export.OutputDir, logger)
	if err != nil {
		logger.Fatal("Failed to initialize spreadsheet exporter", zap.Error(err))
	}

	// Initialize application services
	profileService := service.NewProfileService(profileRepo, utils.NewServiceLogger(logger, "profile"))
	authService := service.NewAuthService(
		userRepo,
		sessionRepo,
		profileService,
		cfg.Auth.SessionTTL,
		cfg.Auth.BcryptCost,
		utils.NewServiceLogger(logger, "auth"),
	)
	documentService := service.NewDocumentService(documentRepo, profileRepo, utils.NewServiceLogger(logger, "document"))
	summaryService := service.NewSummaryService(documentRepo, utils.NewServiceLogger(logger, "summary"))

	// Initialize HTTP server
	server := httpserver.NewServer(
		httpserver.ServerConfig{
			Host:         cfg.Server.Host,
			Port:         cfg.Server.Port,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
		authService,
		profileService,
		documentService,
		summaryService,
		docExporter,
		excelExporter,
		utils.NewServiceLogger(logger, "http"),
	)

	// Run until interrupted, then shut down gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Start(ctx); err != nil {
		logger.Fatal("HTTP server error", zap.Error(err))
	}

	logger.Info("Server exited successfully")
}
