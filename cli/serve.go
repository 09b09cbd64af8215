package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/subcommands"

	"fincalc/config"
	httpLayer "fincalc/http"
	"fincalc/logger"
	"fincalc/service"
)

type serveCmd struct {
	port int
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "run the calculators HTTP API" }
func (*serveCmd) Usage() string {
	return `fincalc serve [-port <port>]

  Serves the calculators over HTTP. Configuration comes from the
  environment (and a .env file): PORT, LOG_LEVEL, LOG_PRETTY, REDIS_ADDR,
  CACHE_TTL, RATE_LIMIT_CAPACITY, RATE_LIMIT_WINDOW, STRICT_LIMITS,
  LIMITS_FILE.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.port, "port", 0, "Port to listen on, overrides PORT")
}

func (c *serveCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.port != 0 {
		cfg.Port = c.port
	}
	if *limitsPath != "" {
		if cfg.Limits, err = config.LoadLimits(*limitsPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading limits: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	cache, closeCache := newCache(ctx, cfg, log)
	defer closeCache()

	var strictLimits *config.Limits
	if cfg.StrictLimits {
		strictLimits = cfg.Limits
	}

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitCapacity, cfg.RateLimitWindow)
	defer rateLimiter.Stop()

	router := httpLayer.NewRouter(httpLayer.RouterConfig{
		Log:         log,
		Limits:      cfg.Limits,
		RateLimiter: rateLimiter,
		CapitalGainsHandler: httpLayer.NewCapitalGainsHandler(
			service.NewCapitalGainsService(cache, log), strictLimits, log),
		LoanHandler: httpLayer.NewLoanHandler(
			service.NewLoanService(cache, log), strictLimits, log),
		WithdrawalPlanHandler: httpLayer.NewWithdrawalPlanHandler(
			service.NewWithdrawalPlanService(cache, log), strictLimits, log),
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.Port).Bool("strict_limits", cfg.StrictLimits).Msg("Calculators API listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Error().Err(err).Msg("Error starting server")
		return subcommands.ExitFailure
	case <-quit:
		log.Info().Msg("Shutting down server...")
	case <-ctx.Done():
		log.Info().Msg("Context cancelled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server exited")
	return subcommands.ExitSuccess
}
