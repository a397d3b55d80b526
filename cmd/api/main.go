package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/rubayatk-tech/meat-donation-service/internal/adapter/repo"
	"github.com/rubayatk-tech/meat-donation-service/internal/http/handlers"
	"github.com/rubayatk-tech/meat-donation-service/internal/http/httpapi"
	"github.com/rubayatk-tech/meat-donation-service/internal/infra"
	"github.com/rubayatk-tech/meat-donation-service/internal/infra/geoip"
	"github.com/rubayatk-tech/meat-donation-service/internal/service/mailer"
	"github.com/rubayatk-tech/meat-donation-service/internal/service/outbox"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	if cfg.SessionSecret == infra.InsecureSessionSecret {
		logger.Warn().Msg("SESSION_SECRET is unset; using the insecure default")
	}

	ctx := context.Background()
	db, err := infra.NewDB(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	donations := repo.NewDonationRepository(db)
	outboxRepo := repo.NewOutboxRepository(db)

	geo, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open geoip database")
	}
	if closer, ok := geo.(io.Closer); ok {
		defer closer.Close()
	}

	dispatcher := outbox.NewDispatcher(outboxRepo, mailer.New(cfg), logger, cfg.OutboxSweepEvery, cfg.OutboxMaxAttempts)
	if err := dispatcher.Start(); err != nil {
		logger.Fatal().Err(err).Msg("failed to start outbox dispatcher")
	}
	defer dispatcher.Stop()

	app := handlers.NewApp(cfg, logger, donations, outboxRepo, geo)
	router := httpapi.NewRouter(app)
	server := infra.NewHTTPServer(cfg, logger, router)

	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
