package cli

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/taskflowd/internal/web"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		if serveAddr != "" {
			cfg.Server.Addr = serveAddr
		}
		if cfg.AI.APIKey == "" {
			log.Println("warning: no AI api key configured, suggestions will use fallback defaults")
		}

		server := web.New(newStore(), newProducer(cfg))
		log.Printf("taskflowd listening on %s", cfg.Server.Addr)
		return server.Run(cfg.Server.Addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides config)")
}
