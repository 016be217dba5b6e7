package cli

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/hillclimb/internal/server"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the search engine over HTTP",
		Long: `Start an HTTP server answering POST /api/v1/path and POST /api/v1/shortest.
The request body is JSON: {"grid": "Sab...\nabE", "maxClimb": 1, "strategy": "reverse"}.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadServerConfig()
			if err != nil {
				return err
			}
			gin.SetMode(gin.ReleaseMode)
			srv := server.New(cfg, slog.Default())
			cmd.Printf("listening on %s\n", cfg.Addr)

			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().String(addrFlagName, defaultServerAddr, "listen address")
	bindFlagToConfig(cmd.Flags().Lookup(addrFlagName), serverAddrKey)
	cmd.Flags().Int(timeoutFlagName, defaultServerTimeout, "per-request search budget in seconds")
	bindFlagToConfig(cmd.Flags().Lookup(timeoutFlagName), serverTimeoutKey)

	return cmd
}

func loadServerConfig() (server.Config, error) {
	settings, err := loadSearchSettings()
	if err != nil {
		return server.Config{}, err
	}
	cfg := server.DefaultConfig()
	cfg.Addr = viper.GetString(serverAddrKey)
	cfg.Timeout = time.Duration(viper.GetInt64(serverTimeoutKey)) * time.Second
	cfg.MaxBodyBytes = viper.GetInt64(serverMaxBodyKey)
	cfg.Workers = settings.workers
	cfg.Strategy = settings.strategy
	cfg.MaxClimb = viper.GetInt(maxClimbKey)
	cfg.MaxExpansions = settings.budget
	if cfg.Timeout <= 0 {
		cfg.Timeout = server.DefaultConfig().Timeout
	}

	return cfg, nil
}
