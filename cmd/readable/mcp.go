package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/SuyashSrivastava1/ReadAble/internal/tools"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the ReadAble tools over MCP on stdio",
	Long:  "Run a Model Context Protocol server on stdin/stdout exposing simplify_text, translate_text and grade_text, plus the reading profile catalog.",
	Args:  cobra.NoArgs,
	RunE:  runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := tools.NewMCPServer(tools.Deps{
		Service:        newService(ctx),
		DefaultProfile: appConfig.DefaultProfile(),
		Version:        version,
	})

	stdio := server.NewStdioServer(s)
	if err := stdio.Listen(ctx, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("MCP server error: %w", err)
	}
	return nil
}
