// Package cmd provides CLI commands for linkgraph.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func setupLogger() {
	logLevel := strings.ToUpper(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "INFO"
	}

	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	slog.SetDefault(slog.New(handler))
}

var rootCmd = &cobra.Command{
	Use:   "linkgraph",
	Short: "Resolve normalized profile payloads into structured records",
	Long: `Linkgraph turns normalized profile API payloads (flat entity
collections cross-referencing each other by URN) into fully nested,
strongly typed profile records, and extracts profile hits from the
matching search payloads.

Examples:
  linkgraph convert -i payload.json -o profile.json
  cat payload.json | linkgraph convert --public-id jdoe
  linkgraph hits -i search.json --pretty
  linkgraph queries --targets targets.yaml
  linkgraph serve`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	setupLogger()
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(hitsCmd)
	rootCmd.AddCommand(queriesCmd)
	rootCmd.AddCommand(serveCmd)
}
