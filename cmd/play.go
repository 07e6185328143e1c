package cmd

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play [tema]",
	Short: "Start a training session, optionally on a specific topic",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var topicID string
		if len(args) > 0 {
			topicID = args[0]
		}
		return runApp(cmd, topicID)
	},
}

func init() {
	playCmd.Flags().String("topics", "", "Directory of JSON topic packs to load (overrides MENTALGYM_PACKS)")
}
