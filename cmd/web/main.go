package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gallery-tools/exhibit-atlas/pkg/doc/docx"
	"github.com/gallery-tools/exhibit-atlas/pkg/server"
	"github.com/gallery-tools/exhibit-atlas/pkg/services/charts"
	"github.com/gallery-tools/exhibit-atlas/pkg/services/config"
	"github.com/gallery-tools/exhibit-atlas/pkg/services/report"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Exhibit Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to an optional generator profile")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	renderer := charts.NewRenderer(charts.Config{
		PieWidth:  cfg.Charts.PieWidth,
		PieHeight: cfg.Charts.PieHeight,
		BarWidth:  cfg.Charts.BarWidth,
		BarHeight: cfg.Charts.BarHeight,
		WorkDir:   cfg.WorkDir,
	})
	generator := report.NewGenerator(renderer, docx.NewSink(), cfg.WorkDir)

	addr := cfg.Server.Addr
	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")
	if host != "" && port != "" {
		addr = net.JoinHostPort(host, port)
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr:            addr,
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Generator: generator,
		},
	})

	return api.Start()
}
