package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/charmbracelet/huh"
)

var flagYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <nombre>",
	Short: "Eliminar una meta y su historial",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "No pedir confirmación")
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(_ *cobra.Command, args []string) error {
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

	if !flagYes {
		confirmed := false
		prompt := huh.NewConfirm().
			Title(fmt.Sprintf("¿Eliminar la meta %q (%s ahorrados)?", g.Name, money.Format(g.CurrentAmount))).
			Affirmative("Eliminar").
			Negative("Cancelar").
			Value(&confirmed)
		if err := prompt.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("  Cancelado.")
			return nil
		}
	}

	if err := st.DeleteGoal(g.ID); err != nil {
		return err
	}
	fmt.Printf("  Meta eliminada: %s\n", g.Name)
	return nil
}
