package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/alcancia-dev/alcancia/internal/format"
	"github.com/alcancia-dev/alcancia/internal/model"
	"github.com/alcancia-dev/alcancia/internal/tui/icons"

	"github.com/spf13/cobra"
)

var (
	flagAddTarget  int64
	flagAddIcon    string
	flagAddColor   string
	flagAddDate    string
	flagAddInitial int64
)

var addCmd = &cobra.Command{
	Use:   "add <nombre>",
	Short: "Crear una meta de ahorro",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().Int64VarP(&flagAddTarget, "target", "t", 0, "Monto objetivo en pesos (0 = sin límite)")
	addCmd.Flags().StringVarP(&flagAddIcon, "icon", "i", "", "Ícono ("+strings.Join(icons.Names(), ", ")+")")
	addCmd.Flags().StringVarP(&flagAddColor, "color", "c", "", "Color hex #rrggbb")
	addCmd.Flags().StringVar(&flagAddDate, "date", "", "Fecha límite DD-MM-AAAA")
	addCmd.Flags().Int64Var(&flagAddInitial, "initial", 0, "Monto inicial en pesos")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	cfg, money, err := loadSetup()
	if err != nil {
		return err
	}

	g := model.NewGoal(strings.Join(args, " "))
	g.Icon = flagAddIcon
	g.Color = flagAddColor
	if g.Color == "" {
		g.Color = cfg.Appearance.DefaultGoalColor
	}
	g.CurrentAmount = flagAddInitial
	if flagAddTarget > 0 {
		g.TargetAmount = &flagAddTarget
	}
	if flagAddDate != "" {
		d, err := format.ParseDate(flagAddDate)
		if err != nil {
			return err
		}
		g.TargetDate = &d
	}

	if err := model.Validate(g); err != nil {
		return err
	}
	if flagAddIcon != "" && !icons.Known(flagAddIcon) {
		fmt.Fprintf(os.Stderr, "  Ícono %q no registrado, se usará el de defecto.\n", flagAddIcon)
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.SaveGoal(g); err != nil {
		return err
	}

	target := format.NoLimitLabel
	if g.HasTarget() {
		target = money.Format(*g.TargetAmount)
	}
	fmt.Printf("  Meta creada: %s (%s / %s)\n", g.Name, money.Format(g.CurrentAmount), target)
	return nil
}
