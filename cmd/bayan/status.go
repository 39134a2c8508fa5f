package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/albayan/bayan/internal/catalog"
	"github.com/albayan/bayan/internal/domain"
)

var statusAll bool

var statusCmd = &cobra.Command{
	Use:   "status [narrator...]",
	Short: "Show what is available offline",
	Long: `Show which content types are stored offline.

Audio is reported for the given narrators, the configured narrator by
default, or every known narrator with --all. An audio download counts as
present when the first and last verse are stored.`,
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		narrators := args
		switch {
		case statusAll:
			narrators = nil
			for _, n := range catalog.Narrators() {
				narrators = append(narrators, n.ID)
			}
		case len(narrators) == 0:
			narrators = []string{a.cfg.Audio.Narrator}
		}

		status := a.offline.Status(cmd.Context(), narrators)
		return output(cmd.OutOrStdout(), status, func(w io.Writer) error {
			return printStatus(w, a, status, narrators)
		})
	}),
}

func init() {
	statusCmd.Flags().BoolVar(&statusAll, "all", false, "report audio for every known narrator")
}

func printStatus(w io.Writer, a *app, s domain.CacheStatus, narrators []string) error {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Offline store") + "\n")
	if !s.Available {
		b.WriteString(errorStyle.Render("unavailable") + " " + dimStyle.Render(a.cfg.Store.Path) + "\n")
		b.WriteString(subtitleStyle.Render("Reads fall back to the network."))
		_, err := fmt.Fprintln(w, panelStyle.Width(min(terminalWidth(), 72)).Render(b.String()))
		return err
	}
	b.WriteString(dimStyle.Render(fmt.Sprintf("%s  %s  schema v%d", a.cfg.Store.Driver, a.cfg.Store.Path, s.Schema)) + "\n\n")

	fmt.Fprintf(&b, "%s Scripture\n", mark(s.Scripture))
	edition := a.offline.Edition()
	if s.Edition != "" {
		edition = s.Edition
	}
	fmt.Fprintf(&b, "%s Commentary %s\n", mark(s.Commentary), dimStyle.Render(edition))

	for i, id := range narrators {
		name := id
		if n, ok := catalog.LookupNarrator(id); ok {
			name = n.Name
		}
		fmt.Fprintf(&b, "%s Audio %s %s", mark(s.Audio[id]), name, dimStyle.Render("("+id+")"))
		if i < len(narrators)-1 {
			b.WriteString("\n")
		}
	}

	_, err := fmt.Fprintln(w, panelStyle.Width(min(terminalWidth(), 72)).Render(b.String()))
	return err
}
