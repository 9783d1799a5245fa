package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/PubNubDevelopers/pn-tool-usage-history-sub001/internal/admin"
	httpapi "github.com/PubNubDevelopers/pn-tool-usage-history-sub001/internal/api/http"
	"github.com/PubNubDevelopers/pn-tool-usage-history-sub001/internal/config"
	"github.com/PubNubDevelopers/pn-tool-usage-history-sub001/internal/health"
	"github.com/PubNubDevelopers/pn-tool-usage-history-sub001/internal/platform/logger"
	"github.com/PubNubDevelopers/pn-tool-usage-history-sub001/internal/services"
)

var debug bool

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "usage-gateway",
		Short: "Gateway for account, keyset and usage lookups against the admin API",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output")
	return rootCmd
}

func serve() error {
	log := logger.New("usage-gateway")

	cfg, err := config.New()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	adminClient, err := admin.New(admin.Config{
		BaseURL:   cfg.AdminBaseURL,
		Timeout:   cfg.AdminRequestTimeout,
		PageLimit: cfg.AdminPageLimit,
		Logger:    log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Admin client unavailable")
	}

	// -------- Health monitor ---------------
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	upstream := health.NewUpstreamChecker("admin-api", adminClient, log)
	checker := health.NewServiceHealthChecker(log, upstream)
	go upstream.Start(ctx, cfg.HealthInterval)
	go checker.Start(ctx, cfg.HealthInterval)

	// -------- Router & Server --------------
	router := httpapi.NewRouter(httpapi.Services{
		Auth:     services.NewAuthService(adminClient),
		Accounts: services.NewAccountService(adminClient),
		Apps:     services.NewAppService(adminClient),
		Keysets:  services.NewKeysetService(adminClient),
		Usage:    services.NewUsageService(adminClient),
		Modules:  services.NewModuleService(adminClient, log),
		Events:   services.NewEventService(adminClient, log),
		Health:   checker,
	}, log)

	server := &http.Server{
		Addr:         cfg.GetHTTPAddr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server…")
	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
	return nil
}
