package cmd

import (
	"fmt"

	"github.com/alcancia-dev/alcancia/internal/cli"
	"github.com/alcancia-dev/alcancia/internal/format"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history <nombre>",
	Short: "Historial de abonos y retiros de una meta",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, args []string) error {
	cfg, money, err := loadSetup()
	if err != nil {
		return err
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	g, err := st.FindGoalByName(args[0])
	if err != nil {
		return err
	}

	contribs, err := st.ListContributions(g.ID)
	if err != nil {
		return err
	}
	if len(contribs) == 0 {
		fmt.Printf("\n  Sin movimientos para %s.\n", g.Name)
		return nil
	}

	t := cli.Table{
		Title:   "Movimientos de " + g.Name,
		Headers: []string{"Fecha", "Monto", "Nota"},
	}
	for _, c := range contribs {
		t.Rows = append(t.Rows, []string{
			format.Date(c.At.Local()),
			money.Format(c.Amount),
			c.Note,
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(t))
	fmt.Printf("  Total: %s\n", money.Format(g.CurrentAmount))
	return nil
}
