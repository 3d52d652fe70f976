package main

import (
	"fmt"
	"net"
	"os"

	"github.com/de-tools/sales-atlas/pkg/runtime/app"
	"github.com/de-tools/sales-atlas/pkg/server"
	"github.com/de-tools/sales-atlas/pkg/services/window"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for the POS revenue dashboard",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the settings file (defaults and DASHBOARD_* environment variables apply when empty)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	a, err := app.Open(ctx, cfgPath, window.SystemClock())
	if err != nil {
		return fmt.Errorf("failed to initialize dashboard: %w", err)
	}
	defer a.Close()

	settings := a.Settings
	logger.Info().
		Str("profile", settings.Database.Profile).
		Str("timezone", settings.Report.Timezone).
		Int("max_parallel_queries", settings.Report.MaxParallelQueries).
		Msg("dashboard configuration loaded")

	api := server.NewWebAPI(server.Config{
		Addr:            net.JoinHostPort(settings.Server.Host, settings.Server.Port),
		ShutdownTimeout: settings.Server.ShutdownTimeout,
		AllowedOrigins:  settings.Server.AllowedOrigins,
		Dependencies: server.Dependencies{
			Dashboard: a.Service,
			Logger:    logger,
		},
	})

	return api.Start()
}
