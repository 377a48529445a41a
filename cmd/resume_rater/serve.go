package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-rater/internal/config"
	"github.com/jonathan/resume-rater/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for analyzing job descriptions and resumes and scoring matches.`,
	RunE:  runServe,
}

var (
	servePort       int
	serveConfigPath string
	serveJSONLogs   bool
	serveDebug      bool
	serveUseBrowser bool
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "Path to JSON config file")
	serveCmd.Flags().BoolVar(&serveJSONLogs, "json-logs", false, "Emit logs as JSON")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug logging")
	serveCmd.Flags().BoolVar(&serveUseBrowser, "use-browser", false, "Render SPA job boards in a headless browser")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	var fileCfg config.Config
	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return err
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		fileCfg = *loaded
	}

	log := buildLogger(serveJSONLogs || fileCfg.JSONLogs, serveDebug || fileCfg.Debug)
	defer func() { _ = log.Sync() }()

	databaseURL := fileCfg.DatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}

	jwtSecret := fileCfg.JWTSecret
	if jwtSecret == "" {
		jwtSecret = os.Getenv("JWT_SECRET")
	}

	port := servePort
	if fileCfg.Port != 0 && port == 8080 {
		port = fileCfg.Port
	}
	if env := os.Getenv("PORT"); env != "" && port == 8080 {
		parsed, err := strconv.Atoi(env)
		if err != nil {
			return fmt.Errorf("invalid PORT environment variable: %w", err)
		}
		port = parsed
	}

	cfg := server.Config{
		Port:               port,
		DatabaseURL:        databaseURL,
		JWTSecret:          jwtSecret,
		JWTExpirationHours: fileCfg.JWTExpirationHours,
		UseBrowser:         serveUseBrowser || fileCfg.UseBrowser,
		Weights:            fileCfg.Weights,
		Logger:             log,
	}

	srv, err := server.New(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
