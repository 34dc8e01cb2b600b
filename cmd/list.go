package cmd

import (
	"fmt"

	"github.com/alcancia-dev/alcancia/internal/cli"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Listado de metas en tabla",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
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
		return nil
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.GoalTable(goals, money)))
	fmt.Println(cli.RenderSummary(goals, money))
	return nil
}
