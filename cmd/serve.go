package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/they4kman/lightsout/cmd/options"
	"github.com/they4kman/lightsout/config"
	"github.com/they4kman/lightsout/logging"
	"github.com/they4kman/lightsout/portfolio"
	"github.com/they4kman/lightsout/server"
)

var envFile string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio site and its project API",
	Long: `Serve the portfolio site and its project API.

Settings come from the environment, after loading an env file:
	PORT        port to listen on (3000)
	DATA_FILE   JSON file listing the projects
	PUBLIC_DIR  directory of static files; unknown paths get its index.html
	LOG_LEVEL   debug, info, warn or error
	LOG_FORMAT  "json" for JSON logs
Flags override the environment.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(envFile)
		if err != nil {
			return err
		}

		cfg, err = options.ApplyServeFlags(cfg, cmd.Flags())
		if err != nil {
			return err
		}
		logging.Setup(cfg.LogLevel, cfg.LogJSON)

		if cfg.LogLevel != "debug" {
			gin.SetMode(gin.ReleaseMode)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := server.New(server.Options{
			Port:      cfg.Port,
			Store:     portfolio.NewStore(cfg.DataFile),
			PublicDir: cfg.PublicDir,
		})
		return srv.Run(ctx)
	},
}

func init() {
	defaults := config.Defaults()

	serveCmd.Flags().StringVar(&envFile, "env-file", ".env", "Env file to load before reading the environment")
	serveCmd.Flags().IntP("port", "p", defaults.Port, "Port to listen on")
	serveCmd.Flags().String("data", defaults.DataFile, "JSON file listing the projects")
	serveCmd.Flags().String("public", defaults.PublicDir, "Directory of static files")

	rootCmd.AddCommand(serveCmd)
}
