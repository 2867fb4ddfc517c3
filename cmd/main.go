// @title           Thermal Sentinel API
// @version         1.0
// @description     Turbine thermal monitoring: live telemetry, overheat notifications, frame analysis and AI diagnosis.
// @BasePath        /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "thermal_sentinel/docs"
	"thermal_sentinel/internal/advisor"
	"thermal_sentinel/internal/handlers"
	"thermal_sentinel/internal/logger"
	"thermal_sentinel/internal/repository"
	"thermal_sentinel/internal/repository/db"
	"thermal_sentinel/internal/server"
	"thermal_sentinel/internal/service"
	"thermal_sentinel/internal/upstream"

	"github.com/spf13/viper"
)

const shutdownTimeout = 10 * time.Second

func main() {
	v := viper.GetViper()
	cfgErr := loadConfig(v)

	// init logger
	log := logger.Get(v.GetString("log.level"))
	if cfgErr != nil {
		log.Fatalw("error reading config", "err", cfgErr)
	}

	// open DB
	conn, err := openDB(v, log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	cfg := serviceConfig(v)
	if cfg.SigningKey == "" {
		log.Warnw("auth.signing_key is empty; sign-in will fail until THERMAL_AUTH_SIGNING_KEY is set")
	}
	repos := repository.NewRepository(conn)
	source := upstream.NewClient(v.GetString("upstream.base_url"), &http.Client{Timeout: v.GetDuration("upstream.timeout")})
	services := service.NewService(repos, source, advisor.NewGemini(v.GetString("ai.model")), cfg, log)
	apiHandler := handlers.NewHandler(services, log.Named("http"), cfg.Alerts.High)

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// start telemetry polling (via composed service)
	go services.Poller.Run(ctx, v.GetDuration("poll.interval"))

	// start HTTP server
	srv := server.New(v.GetString("port"), apiHandler.InitRoutes())
	runHTTPServer(srv, log)

	// graceful shutdown
	waitForShutdown(cancel, srv, log)
}

// openDB initializes the SQLite database using configuration.
func openDB(v *viper.Viper, log *logger.Logger) (*sql.DB, error) {
	dbPath := v.GetString("db.path")
	log.Infow("opening sqlite", "path", dbPath)
	return db.InitDB(dbPath)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, log *logger.Logger) {
	go func() {
		log.Infow("http_listening", "addr", srv.Addr())
		if err := srv.Run(); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
