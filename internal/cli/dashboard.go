package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sandeepkv93/taskflowd/internal/dashboard"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Browse tasks and notifications interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		model := dashboard.NewModel(newStore(), newProducer(cfg))
		_, err := tea.NewProgram(model).Run()
		return err
	},
}
