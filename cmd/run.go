package cmd

import (
	"fmt"
	"os"

	"github.com/nicoespa/mentalgym/internal/app"
	"github.com/nicoespa/mentalgym/internal/config"
	"github.com/nicoespa/mentalgym/internal/content"
	"github.com/nicoespa/mentalgym/internal/session"
	"github.com/nicoespa/mentalgym/internal/store"
	"github.com/nicoespa/mentalgym/internal/telemetry"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
// startTopic, when non-empty, starts a session on that topic immediately.
func runApp(cmd *cobra.Command, startTopic string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if f := cmd.Flags().Lookup("topics"); f != nil && f.Value.String() != "" {
		cfg.PacksDir = f.Value.String()
	}

	logger, logCloser, err := telemetry.NewLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Logging disabled:", err)
	}
	if logCloser != nil {
		defer logCloser.Close()
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

	catalog, err := buildCatalog(cfg)
	if err != nil {
		return err
	}

	orch := session.NewOrchestrator(catalog, st.ProfileRepo(), st.SessionRepo(), logger)

	profile, err := orch.EnsureProfile(ctx)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}

	if startTopic != "" {
		if _, err := catalog.Topic(startTopic); err != nil {
			return err
		}
	}

	return app.Run(app.Options{
		Orchestrator: orch,
		Catalog:      catalog,
		Sessions:     st.SessionRepo(),
		Profile:      profile,
		StartTopic:   startTopic,
	})
}

// buildCatalog combines the builtin topics with any packs on disk.
func buildCatalog(cfg config.Config) (*content.Catalog, error) {
	topics := content.Builtin().Topics()

	if cfg.PacksDir != "" {
		packs, err := content.LoadPacks(cfg.PacksDir)
		if err != nil {
			return nil, fmt.Errorf("load packs from %s: %w", cfg.PacksDir, err)
		}
		topics = append(topics, packs...)
	}

	catalog, err := content.NewCatalog(topics)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}
	return catalog, nil
}
