package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/pulseboard/internal/model"
	"github.com/sells-group/pulseboard/internal/registry"
	"github.com/sells-group/pulseboard/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		reg, err := registry.Open(cfg.Catalog.Path)
		if err != nil {
			return err
		}

		theme, err := model.ParseThemeMode(cfg.Theme.Default)
		if err != nil {
			zap.L().Warn("serve: unknown default theme, using light",
				zap.String("theme", cfg.Theme.Default),
			)
		}

		serverCfg := cfg.Server
		if servePort != 0 {
			serverCfg.Port = servePort
		}

		srv := server.New(reg, serverCfg, theme)
		return srv.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
