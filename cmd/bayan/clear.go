package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

var clearTargets = []string{"scripture", "commentary", "audio", "all"}

var clearCmd = &cobra.Command{
	Use:       "clear <scripture|commentary|audio|all>",
	Short:     "Remove downloaded content from the offline store",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: clearTargets,
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		target := args[0]
		ctx := cmd.Context()

		clearers := map[string]func() error{
			"scripture":  func() error { return a.offline.ClearScripture(ctx) },
			"commentary": func() error { return a.offline.ClearCommentary(ctx) },
			"audio":      func() error { return a.offline.ClearAudio(ctx) },
		}

		var names []string
		if target == "all" {
			names = clearTargets[:3]
		} else if slices.Contains(clearTargets, target) {
			names = []string{target}
		}
		for _, name := range names {
			if err := clearers[name](); err != nil {
				return fmt.Errorf("failed to clear %s: %w", name, err)
			}
		}
		return printDone(cmd.OutOrStdout(), fmt.Sprintf("Cleared %s.", target))
	}),
}
