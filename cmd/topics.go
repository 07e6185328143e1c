package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/nicoespa/mentalgym/internal/config"
	"github.com/nicoespa/mentalgym/internal/store"
	"github.com/spf13/cobra"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List available topics with your progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		catalog, err := buildCatalog(cfg)
		if err != nil {
			return err
		}

		dbPath, err := resolveDBPath(cmd, cfg)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		progress, err := st.SessionRepo().Progress(context.Background())
		if err != nil {
			return fmt.Errorf("query progress: %w", err)
		}

		fmt.Printf("%-22s  %-28s  %-12s  %9s  %-5s  %s\n",
			"ID", "Título", "Dificultad", "Preguntas", "★", "Veces")
		fmt.Println(strings.Repeat("─", 90))

		for _, topic := range catalog.Topics() {
			tp := progress[topic.ID]
			stars := strings.Repeat("★", tp.BestStars) + strings.Repeat("☆", 3-tp.BestStars)
			fmt.Printf("%-22s  %-28s  %-12s  %9d  %-5s  %d\n",
				topic.ID, topic.Title, string(topic.Difficulty),
				len(topic.Questions), stars, tp.TimesPlayed)
		}

		fmt.Printf("\n%d temas\n", len(catalog.Topics()))
		return nil
	},
}
