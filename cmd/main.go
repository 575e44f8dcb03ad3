package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	auzerolog "github.com/StephanHCB/go-autumn-logging-zerolog"
	"github.com/rs/zerolog"

	"github.com/eurofurence/reg-paypal-adapter/internal/common"
	"github.com/eurofurence/reg-paypal-adapter/internal/config"
	"github.com/eurofurence/reg-paypal-adapter/internal/interaction"
	"github.com/eurofurence/reg-paypal-adapter/internal/logging"
	"github.com/eurofurence/reg-paypal-adapter/internal/repository/downstreams/paypal"
	"github.com/eurofurence/reg-paypal-adapter/internal/server"
)

func main() {
	configFilePath := flag.String("config", "config.yaml", "path to the yaml configuration file")
	flag.Parse()

	logger := logging.NewLogger()

	conf, err := config.LoadConfiguration(*configFilePath)
	if err != nil {
		logger.Fatal("Couldn't load configuration from %s. [error]: %v", *configFilePath, err)
	}

	if err := config.Validate(conf, logger.Error); err != nil {
		logger.Fatal("Configuration is invalid. [error]: %v", err)
	}

	setupGlobalLogging(&conf.Logging)

	gateway, err := paypal.New(&conf.Paypal)
	if err != nil {
		logger.Fatal("Couldn't create the payment provider client. [error]: %v", err)
	}

	i, err := interaction.NewServiceInteractor(gateway, conf, logger)
	if err != nil {
		logger.Fatal("Couldn't create the service interactor. [error]: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	router := server.CreateRouter(i, &conf.Security)
	srv := server.NewServer(ctx, &conf.Server, router)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sig
		cancel()
		logger.Info("Stopping services now")

		tCtx, tcancel := context.WithTimeout(context.Background(), time.Second*5)
		defer tcancel()

		if err := srv.Shutdown(tCtx); err != nil {
			logger.Fatal("Couldn't shutdown server gracefully. [error]: %v", err)
		}
	}()

	logger.Info("Serving on %s in %s mode", srv.Addr, conf.Paypal.Mode)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("Server stopped unexpectedly. [error]: %v", err)
	}
}

// setupGlobalLogging configures the zerolog backend used by the go-autumn
// rest client stack, so downstream request logging and circuit breaker state
// changes end up in the same log stream.
func setupGlobalLogging(conf *config.LoggingConfig) {
	zerolog.SetGlobalLevel(severityLevel(conf.Severity))

	if conf.Style == "plain" {
		auzerolog.SetupPlaintextLogging()
	} else {
		auzerolog.SetupJsonLogging(common.ApplicationName)
	}
}

func severityLevel(severity string) zerolog.Level {
	switch severity {
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
