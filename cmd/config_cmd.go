package cmd

import (
	"fmt"

	"github.com/alcancia-dev/alcancia/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Mostrar la configuración actual",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("\n  Archivo: %s\n", config.ConfigPath())
	if !config.Exists() {
		fmt.Println("  (no existe, se muestran los valores por defecto)")
	}
	fmt.Println("\n  [General]")
	fmt.Printf("    base de datos  %s\n", config.DBPath(cfg))
	fmt.Println("\n  [Moneda]")
	fmt.Printf("    símbolo        %s\n", cfg.Currency.Symbol)
	fmt.Printf("    miles          %q\n", cfg.Currency.ThousandsSep)
	fmt.Printf("    decimales      %d\n", cfg.Currency.Decimals)
	fmt.Println("\n  [Apariencia]")
	fmt.Printf("    tema           %s\n", cfg.Appearance.Theme)
	fmt.Printf("    color defecto  %s\n", cfg.Appearance.DefaultGoalColor)
	fmt.Println()
	return nil
}
