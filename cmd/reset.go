package cmd

import (
	"fmt"
	"os"

	"github.com/nicoespa/mentalgym/internal/config"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all progress and start over",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		dbPath, err := resolveDBPath(cmd, cfg)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Printf("Esto borra todo tu progreso (%s).\n", dbPath)
			fmt.Println("Ejecutá de nuevo con --yes para confirmar.")
			return nil
		}

		if err := os.Remove(dbPath); err != nil {
			if os.IsNotExist(err) {
				fmt.Println("No hay progreso que borrar.")
				return nil
			}
			return fmt.Errorf("remove database: %w", err)
		}

		fmt.Println("Progreso borrado. ¡A empezar de cero!")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion without prompting")
}
