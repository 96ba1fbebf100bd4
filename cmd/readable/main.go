// Package main provides the readable CLI and HTTP API server.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/SuyashSrivastava1/ReadAble/internal/config"
	"github.com/SuyashSrivastava1/ReadAble/internal/llm"
	"github.com/SuyashSrivastava1/ReadAble/internal/simplify"
)

var (
	configFile string
	verbose    bool

	appConfig *config.Config
	logger    = zap.NewNop()
	llmClient llm.Client
)

var rootCmd = &cobra.Command{
	Use:           "readable",
	Short:         "Profile-driven text simplification",
	Long:          "ReadAble rewrites text for a reading profile, summarizes it, translates it and grades its readability, from the command line or over HTTP.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}
		if verbose {
			cfg.Verbose = true
		}
		appConfig = cfg

		logger, err = newLogger(cfg.Verbose)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if llmClient != nil {
			_ = llmClient.Close()
		}
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to a JSON or YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// newLogger writes JSON logs to stderr so stdout stays clean for results
func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

// newService builds the simplification service from the loaded config. A
// client that cannot be created is logged and replaced by local rules.
func newService(ctx context.Context) *simplify.Service {
	llmConfig := appConfig.LLMConfig()
	client, err := llm.NewClient(ctx, llmConfig)
	if err != nil {
		logger.Warn("text generation unavailable, using local rules", zap.Error(err))
		client = llm.DisabledClient{}
	}
	llmClient = client
	return simplify.New(client,
		simplify.WithLogger(logger),
		simplify.WithModels(llmConfig.ModelCandidates()),
	)
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
