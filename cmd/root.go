// Package cmd implements the alcancia CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/alcancia-dev/alcancia/internal/cli"
	"github.com/alcancia-dev/alcancia/internal/config"
	"github.com/alcancia-dev/alcancia/internal/format"
	"github.com/alcancia-dev/alcancia/internal/store"
	"github.com/alcancia-dev/alcancia/internal/tui/theme"

	"github.com/spf13/cobra"
)

var (
	flagDB    string
	flagWidth int
)

var rootCmd = &cobra.Command{
	Use:   "alcancia",
	Short: "Metas de ahorro en tu terminal",
	Long:  "Track savings goals from the terminal: cards, progress, deposits.",
	RunE:  runOverview,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Path to the goals database (default: XDG data dir)")
	rootCmd.Flags().IntVarP(&flagWidth, "width", "w", 80, "Render width for goal cards")
}

// loadSetup loads config, applies the theme, and returns the money formatter.
func loadSetup() (config.Config, format.Money, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, format.CLP, err
	}
	theme.SetActive(cfg.Appearance.Theme)
	return cfg, config.Money(cfg), nil
}

// openStore opens the goals database from the --db flag or config.
func openStore(cfg config.Config) (*store.Store, error) {
	path := flagDB
	if path == "" {
		path = config.DBPath(cfg)
	}
	return store.Open(path)
}

func runOverview(_ *cobra.Command, _ []string) error {
	cfg, money, err := loadSetup()
	if err != nil {
		return err
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	goals, err := st.ListGoals()
	if err != nil {
		return err
	}

	if len(goals) == 0 {
		fmt.Println("\n  Sin metas todavía.")
		fmt.Println("  Crea la primera con `alcancia add`.")
		return nil
	}

	width := flagWidth
	if width < 40 {
		width = 40
	}
	perRow := width / 40
	if perRow < 1 {
		perRow = 1
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("ALCANCIA"))
	fmt.Println()
	fmt.Print(cli.RenderGoalCards(goals, money, width, perRow))
	fmt.Println()
	fmt.Println(cli.RenderSummary(goals, money))
	return nil
}
