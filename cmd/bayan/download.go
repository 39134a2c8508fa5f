package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/albayan/bayan/internal/catalog"
	"github.com/albayan/bayan/internal/domain"
)

// clearLine clears the progress line from the terminal
const clearLine = "\r\033[K"

var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download content into the offline store",
}

var downloadScriptureCmd = &cobra.Command{
	Use:   "scripture",
	Short: "Download the full scripture text (all surahs and pages)",
	Args:  cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		p := newProgressPrinter(cmd.ErrOrStderr())
		err := a.offline.LoadFullScripture(cmd.Context(), p.report)
		p.done()
		if err != nil {
			return fmt.Errorf("scripture download failed: %w", err)
		}
		return printDone(cmd.OutOrStdout(), "Scripture saved for offline reading.")
	}),
}

var downloadCommentaryCmd = &cobra.Command{
	Use:   "commentary",
	Short: "Download the configured commentary edition",
	Args:  cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		p := newProgressPrinter(cmd.ErrOrStderr())
		err := a.offline.LoadFullCommentary(cmd.Context(), p.report)
		p.done()
		if err != nil {
			return fmt.Errorf("commentary download failed: %w", err)
		}
		return printDone(cmd.OutOrStdout(), fmt.Sprintf("Commentary %s saved for offline reading.", a.offline.Edition()))
	}),
}

var downloadAudioCmd = &cobra.Command{
	Use:   "audio [narrator]",
	Short: "Download every verse recitation of one narrator",
	Long: `Download every verse recitation of one narrator, one surah at a time.

The narrator defaults to audio.narrator from the configuration. Verses
that fail to download are skipped and listed at the end. Interrupting
the download keeps the surahs already stored.`,
	Args: cobra.MaximumNArgs(1),
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		narratorID := a.cfg.Audio.Narrator
		if len(args) == 1 {
			narratorID = args[0]
		}
		if _, ok := catalog.LookupNarrator(narratorID); !ok {
			return fmt.Errorf("%w: %q (see 'bayan narrators')", domain.ErrUnknownNarrator, narratorID)
		}

		p := newProgressPrinter(cmd.ErrOrStderr())
		summary, err := a.offline.LoadNarratorAudio(cmd.Context(), narratorID, p.report)
		p.done()
		if err != nil && summary.Attempted == 0 {
			return fmt.Errorf("audio download failed: %w", err)
		}

		if outErr := output(cmd.OutOrStdout(), summary, func(w io.Writer) error {
			return printAudioSummary(w, summary)
		}); outErr != nil {
			return outErr
		}
		if err != nil {
			return fmt.Errorf("audio download stopped after %d surahs: %w", summary.Surahs, err)
		}
		return nil
	}),
}

func init() {
	downloadCmd.AddCommand(downloadScriptureCmd, downloadCommentaryCmd, downloadAudioCmd)
}

func printAudioSummary(w io.Writer, s domain.AudioSummary) error {
	narrator := catalog.NarratorOrDefault(s.Narrator)
	fmt.Fprintln(w, titleStyle.Render(narrator.Name)+" "+dimStyle.Render("("+s.Narrator+")"))
	fmt.Fprintf(w, "  Surahs:  %d\n", s.Surahs)
	fmt.Fprintf(w, "  Stored:  %s of %d verses\n", successStyle.Render(fmt.Sprint(s.Stored)), s.Attempted)
	if s.Failed > 0 {
		keys := make([]string, 0, len(s.Failures))
		for _, k := range s.Failures {
			keys = append(keys, fmt.Sprintf("%d:%d", k.Surah, k.Verse))
		}
		fmt.Fprintf(w, "  Failed:  %s %s\n", errorStyle.Render(fmt.Sprint(s.Failed)), dimStyle.Render(strings.Join(keys, " ")))
	}
	fmt.Fprintln(w, dimStyle.Render("  Run:     "+s.RunID))
	return nil
}

func printDone(w io.Writer, msg string) error {
	return output(w, map[string]string{"result": msg}, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, cachedMark+" "+msg)
		return err
	})
}

// progressPrinter renders load progress on stderr. On a terminal the
// line is rewritten in place.
type progressPrinter struct {
	w       io.Writer
	inPlace bool
	dirty   bool
}

func newProgressPrinter(w io.Writer) *progressPrinter {
	return &progressPrinter{w: w, inPlace: w == io.Writer(os.Stderr) && stderrIsTerminal()}
}

func (p *progressPrinter) report(pr domain.Progress) {
	line := pr.Message
	if pct := pr.Percent(); pct >= 0 {
		line = fmt.Sprintf("%s %s", accentStyle.Render(fmt.Sprintf("[%3d%%]", pct)), line)
	}
	if p.inPlace {
		fmt.Fprint(p.w, clearLine+line)
		p.dirty = true
		return
	}
	fmt.Fprintln(p.w, line)
}

func (p *progressPrinter) done() {
	if p.dirty {
		fmt.Fprint(p.w, clearLine)
		p.dirty = false
	}
}
