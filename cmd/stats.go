package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/nicoespa/mentalgym/internal/achievements"
	"github.com/nicoespa/mentalgym/internal/config"
	"github.com/nicoespa/mentalgym/internal/progression"
	"github.com/nicoespa/mentalgym/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show your profile, achievements and recent sessions",
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

		ctx := context.Background()

		profile, err := st.ProfileRepo().Ensure(ctx)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}

		history, err := st.SessionRepo().History(ctx, 10)
		if err != nil {
			return fmt.Errorf("query history: %w", err)
		}

		progress, err := st.SessionRepo().Progress(ctx)
		if err != nil {
			return fmt.Errorf("query progress: %w", err)
		}
		var completed int
		for _, tp := range progress {
			if tp.Completed {
				completed++
			}
		}

		// Profile.
		fmt.Println("Perfil")
		fmt.Println(strings.Repeat("─", 60))
		fmt.Printf("Nivel:      %d (%d/%d XP)\n",
			profile.Level, profile.XP, progression.NextLevelXP(profile.Level))
		fmt.Printf("Racha:      %d días\n", profile.Streak)
		fmt.Printf("Temas:      %d/%d completados\n", completed, len(catalog.Topics()))

		// Achievements.
		in := achievements.Input{
			Profile:         profile,
			Sessions:        len(history),
			TopicsCompleted: completed,
			TotalTopics:     len(catalog.Topics()),
		}
		fmt.Println()
		fmt.Println("Logros")
		fmt.Println(strings.Repeat("─", 60))
		for _, a := range achievements.All() {
			mark := "🔒"
			if achievements.IsUnlocked(a.ID, in) {
				mark = a.Icon
			}
			fmt.Printf("%s %-20s %s\n", mark, a.Title, a.Description)
		}

		// Recent sessions.
		fmt.Println()
		fmt.Println("Sesiones recientes")
		fmt.Println(strings.Repeat("─", 60))
		if len(history) == 0 {
			fmt.Println("Todavía no entrenaste.")
			return nil
		}
		for _, rec := range history {
			stars := strings.Repeat("★", rec.Stars) + strings.Repeat("☆", 3-rec.Stars)
			fmt.Printf("%s  %-22s  %s  %d/%d  +%d XP\n",
				rec.FinishedAt.Local().Format("2006-01-02 15:04"),
				rec.TopicID, stars, rec.Correct, rec.Total, rec.XPEarned)
		}
		return nil
	},
}
