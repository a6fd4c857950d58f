package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/gitscribe/internal/app"
	"github.com/ternarybob/gitscribe/internal/common"
	githubconn "github.com/ternarybob/gitscribe/internal/connectors/github"
	"github.com/ternarybob/gitscribe/internal/server"
	"github.com/ternarybob/gitscribe/internal/services/generator"
)

// configPaths is a custom flag type that allows multiple -config flags
type configPaths []string

func (c *configPaths) String() string {
	return fmt.Sprintf("%v", *c)
}

func (c *configPaths) Set(value string) error {
	*c = append(*c, value)
	return nil
}

var (
	// Command-line flags
	configFiles  configPaths // Multiple -config flags supported
	serverPort   = flag.Int("port", 0, "Server port (overrides config)")
	serverPortP  = flag.Int("p", 0, "Server port (shorthand, overrides config)")
	serverHost   = flag.String("host", "", "Server host (overrides config)")
	repoRef      = flag.String("repo", "", "One-shot mode: generate a README for this repository and exit")
	outPath      = flag.String("out", "", "One-shot mode: write the README to this file (default: stdout)")
	showVersion  = flag.Bool("version", false, "Print version information")
	showVersionV = flag.Bool("v", false, "Print version information (shorthand)")

	// Global state
	config *common.Config
	logger arbor.ILogger
)

func init() {
	// Register custom flag for multiple config files
	flag.Var(&configFiles, "config", "Configuration file path (can be specified multiple times, later files override earlier ones)")
	flag.Var(&configFiles, "c", "Configuration file path (shorthand)")
}

func main() {
	common.InstallCrashHandler("./logs")
	defer common.RecoverWithCrashFile()

	flag.Parse()

	common.LoadVersionFromFile()

	if *showVersion || *showVersionV {
		fmt.Printf("Gitscribe version %s\n", common.GetVersion())
		os.Exit(0)
	}

	// Merge port flags (shorthand takes precedence)
	finalPort := *serverPort
	if *serverPortP != 0 {
		finalPort = *serverPortP
	}

	// Auto-discover config file if not specified
	if len(configFiles) == 0 {
		if _, err := os.Stat("gitscribe.toml"); err == nil {
			configFiles = append(configFiles, "gitscribe.toml")
		}
	}

	// 1. Load configuration (defaults -> files -> env)
	var err error
	config, err = common.LoadFromFiles(configFiles...)
	if err != nil {
		tempLogger := arbor.NewLogger()
		tempLogger.Fatal().Strs("paths", configFiles).Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	// 2. Apply command-line flag overrides (highest priority)
	common.ApplyFlagOverrides(config, finalPort, *serverHost)

	// 3. Initialize logger with final configuration
	logger = common.InitLogger(config)

	if config.Retention.Enabled {
		if err := common.ValidateRetentionSchedule(config.Retention.Schedule); err != nil {
			logger.Fatal().Err(err).Msg("Invalid retention configuration")
		}
	}

	// One-shot mode bypasses the server entirely.
	if *repoRef != "" {
		runOnce(*repoRef, *outPath)
		return
	}

	// 4. Print banner
	common.PrintBanner(common.GetVersion())

	logger.Info().
		Strs("config_files", configFiles).
		Int("port", config.Server.Port).
		Str("host", config.Server.Host).
		Msg("Application configuration loaded")

	// Initialize application
	application, err := app.New(config, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize application")
	}
	defer application.Close()

	// Create HTTP server
	srv := server.New(application)

	// Start server in goroutine
	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	logger.Info().
		Str("url", fmt.Sprintf("http://%s:%d", config.Server.Host, config.Server.Port)).
		Msg("Server ready - Press Ctrl+C to stop")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info().Msg("Interrupt signal received")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Server shutdown failed")
	}
}

// runOnce generates a single README without starting the server or opening
// storage.
func runOnce(ref, out string) {
	source := githubconn.NewConnector(githubconn.Options{
		Token:          config.GitHub.Token,
		RateLimit:      config.GitHub.RateLimit,
		RequestTimeout: config.GitHub.RequestTimeout,
	}, logger)

	service := generator.NewService(source, nil, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	analysis, err := service.Generate(ctx, ref)
	if err != nil {
		logger.Fatal().Err(err).Str("repo", ref).Msg("README generation failed")
	}

	if out == "" {
		fmt.Print(analysis.Markdown)
		return
	}

	if err := os.WriteFile(out, []byte(analysis.Markdown), 0644); err != nil {
		logger.Fatal().Err(err).Str("path", out).Msg("Failed to write README")
	}

	logger.Info().Str("path", out).Str("repo", analysis.Metadata.FullName).Msg("README written")
}
