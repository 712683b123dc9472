package cmd

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"txtracker/internal/config"
	"txtracker/internal/core"
	"txtracker/internal/db"
	"txtracker/internal/ethereum"
	"txtracker/internal/http/handler"
	"txtracker/internal/http/handler/middleware"
	"txtracker/internal/http/payload"
	"txtracker/internal/http/server"
	"txtracker/internal/repository"
	"txtracker/pkg/jwt"
	"txtracker/pkg/log"

	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap/zapcore"
)

const datasetKey = "tx-tracker:transactions"

func Start() error {
	logger := log.NewZapLogger("txtracker", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// repositories
	userRepo := repository.NewUserRepository(dbConn)
	if err := userRepo.MigrateAndSeed(); err != nil {
		logger.Errorw("failed to migrate and seed user table", "error", err)
		return err
	}

	datasetRepo := repository.NewDatasetRepository(dbConn, datasetKey)
	if err := datasetRepo.Migrate(); err != nil {
		logger.Errorw("failed to migrate dataset table", "error", err)
		return err
	}

	client, err := ethclient.Dial(config.NodeURL)
	if err != nil {
		logger.Errorw("eth node connection failed", "error", err)
		return err
	}

	nodeService := ethereum.NewNodeService(client)

	// tracker
	tracker := core.NewTracker(
		logger,
		datasetRepo,
		userRepo,
		jwtService,
		core.TrackerConfig{
			RetentionCap: config.RetentionCap,
			PollInterval: config.PollInterval,
		})
	tracker.SetProvider(nodeService)

	// handler
	trackerHlr := handler.NewTrackerHandler(
		logger,
		payload.DecodeValidator{},
		tracker)

	// middleware
	auth := middleware.NewAuthMiddleware(logger, jwtService)
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.Authenticate, trackerHlr.HandleAuthenticate)
	mux.HandleFunc(handler.AddTransaction, auth.Authorize(trackerHlr.HandleAddTransaction))
	mux.HandleFunc(handler.GetTransactions, trackerHlr.HandleGetTransactions)
	mux.HandleFunc(handler.GetTransaction, trackerHlr.HandleGetTransaction)
	mux.HandleFunc(handler.ClearTransactions, auth.Authorize(trackerHlr.HandleClearTransactions))

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
