// Package cli implements the taskflowd commands.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/sandeepkv93/taskflowd/internal/ai"
	"github.com/sandeepkv93/taskflowd/internal/config"
	"github.com/sandeepkv93/taskflowd/internal/store"
)

var seedFlag bool

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "taskflowd",
	Short: "Context-aware task manager",
	Long:  "taskflowd keeps tasks, daily context, and categories in memory, classifies deadlines into notification buckets, and augments tasks with AI-suggested metadata.",
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&seedFlag, "seed", false, "Load demo tasks, context, and categories on startup")
	RootCmd.AddCommand(serveCmd)
	RootCmd.AddCommand(dashboardCmd)
	RootCmd.AddCommand(notifyCmd)
}

func loadConfig() *config.Config {
	cfg, _ := config.Load()
	return cfg
}

func newStore() *store.Store {
	st := store.New()
	if seedFlag {
		st.Seed()
	}
	return st
}

func newProducer(cfg *config.Config) *ai.Producer {
	client := ai.NewClient(ai.ClientOptions{
		APIKey:  cfg.AI.APIKey,
		BaseURL: cfg.AI.BaseURL,
		Model:   cfg.AI.Model,
		Timeout: cfg.AI.Timeout(),
	})
	return ai.NewProducer(client)
}
