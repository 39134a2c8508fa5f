package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/albayan/bayan/internal/catalog"
)

var narratorsCmd = &cobra.Command{
	Use:   "narrators [query]",
	Short: "List the narrators whose recitations can be downloaded",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		found := catalog.FindNarrators(strings.Join(args, " "))
		if len(found) == 0 {
			return fmt.Errorf("no narrator matches %q", args[0])
		}
		return output(cmd.OutOrStdout(), found, func(w io.Writer) error {
			for _, n := range found {
				fmt.Fprintf(w, "%-22s %s\n", accentStyle.Render(n.ID), n.Name)
			}
			return nil
		})
	},
}

var surahsCmd = &cobra.Command{
	Use:   "surahs [query]",
	Short: "List surahs, optionally matching a name or number",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		found := catalog.SearchSurahs(strings.Join(args, " "))
		if len(found) == 0 {
			return fmt.Errorf("no surah matches %q", args[0])
		}
		return output(cmd.OutOrStdout(), found, func(w io.Writer) error {
			for _, s := range found {
				fmt.Fprintf(w, "%3d  %-20s %-18s %s\n",
					s.ID,
					s.Name,
					s.Transliteration,
					dimStyle.Render(fmt.Sprintf("%d verses, page %d, %s", s.VersesCount, s.StartPage, s.RevelationPlace)),
				)
			}
			return nil
		})
	},
}
