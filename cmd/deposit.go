package cmd

import (
	"fmt"
	"strconv"

	"github.com/alcancia-dev/alcancia/internal/model"

	"github.com/spf13/cobra"
)

var flagNote string

var depositCmd = &cobra.Command{
	Use:   "deposit <nombre> <monto>",
	Short: "Abonar a una meta",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runContribution(args, false)
	},
}

var withdrawCmd = &cobra.Command{
	Use:   "withdraw <nombre> <monto>",
	Short: "Retirar de una meta",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runContribution(args, true)
	},
}

func init() {
	depositCmd.Flags().StringVar(&flagNote, "note", "", "Nota del movimiento")
	withdrawCmd.Flags().StringVar(&flagNote, "note", "", "Nota del movimiento")
	rootCmd.AddCommand(depositCmd)
	rootCmd.AddCommand(withdrawCmd)
}

func runContribution(args []string, withdraw bool) error {
	cfg, money, err := loadSetup()
	if err != nil {
		return err
	}

	amount, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil || amount <= 0 {
		return fmt.Errorf("monto inválido: %q", args[1])
	}
	if withdraw {
		amount = -amount
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

	updated, err := st.AddContribution(model.NewContribution(g.ID, amount, flagNote))
	if err != nil {
		return err
	}

	fmt.Printf("  %s: %s", updated.Name, money.Format(updated.CurrentAmount))
	if updated.HasTarget() {
		fmt.Printf(" / %s (%d%%)", money.Format(*updated.TargetAmount), updated.ProgressPercent())
	}
	fmt.Println()
	if updated.Reached() {
		fmt.Println("  ¡Meta cumplida!")
	}
	return nil
}
