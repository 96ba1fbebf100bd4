package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SuyashSrivastava1/ReadAble/internal/config"
	"github.com/SuyashSrivastava1/ReadAble/internal/db"
	"github.com/SuyashSrivastava1/ReadAble/internal/server"
	"github.com/SuyashSrivastava1/ReadAble/internal/server/ratelimit"
)

var (
	servePort       int
	serveTrustProxy bool
	serveTimeout    time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server exposing /api/simplify, /api/translate and /api/profiles.
When DATABASE_URL is set, signed-in users also get /api/history; JWT_SECRET is then required.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from PORT or 5000)")
	serveCmd.Flags().BoolVar(&serveTrustProxy, "trust-proxy", false, "Take client addresses from X-Forwarded-For / X-Real-IP")
	serveCmd.Flags().DurationVar(&serveTimeout, "timeout", 60*time.Second, "Time allowed for model calls per request")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	port := servePort
	if port == 0 {
		port = appConfig.ListenPort()
	}

	cfg := server.Config{
		Port:           port,
		Service:        newService(ctx),
		RateLimit:      ratelimit.LoadConfig(),
		AllowedOrigins: allowedOrigins(os.Getenv("FRONTEND_URL")),
		TrustProxy:     serveTrustProxy,
		RequestTimeout: serveTimeout,
		Logger:         logger,
	}

	if appConfig.DatabaseURL != "" {
		jwtConfig, err := config.JWTConfigFor(appConfig.JWTSecret)
		if err != nil {
			return fmt.Errorf("history requires token validation: %w", err)
		}
		store, err := db.Open(ctx, appConfig.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to open history store: %w", err)
		}
		cfg.Store = store
		cfg.JWT = jwtConfig
	} else {
		logger.Info("DATABASE_URL not set, history is disabled")
	}

	srv, err := server.New(cfg)
	if err != nil {
		if cfg.Store != nil {
			_ = cfg.Store.Close()
		}
		return fmt.Errorf("failed to create server: %w", err)
	}

	logger.Info("ReadAble API configured",
		zap.String("addr", srv.Addr()),
		zap.Bool("history", cfg.Store != nil),
		zap.Strings("origins", cfg.AllowedOrigins),
	)
	return srv.Start(ctx)
}

// allowedOrigins splits a comma-separated FRONTEND_URL value
func allowedOrigins(value string) []string {
	var origins []string
	for _, origin := range strings.Split(value, ",") {
		if origin = strings.TrimRight(strings.TrimSpace(origin), "/"); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return server.DefaultAllowedOrigins
	}
	return origins
}
