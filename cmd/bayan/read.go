package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/albayan/bayan/internal/catalog"
	"github.com/albayan/bayan/internal/domain"
	"github.com/albayan/bayan/internal/resolver"
)

var (
	readEdition  string
	readNarrator string
	readOut      string
)

var readCmd = &cobra.Command{
	Use:   "read",
	Short: "Read content from the offline store, bundled pages or network",
}

var readSurahCmd = &cobra.Command{
	Use:   "surah <number|name>",
	Short: "Print every verse of a surah",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		info, err := parseSurah(args[0])
		if err != nil {
			return err
		}
		verses, layer := a.resolver.ResolveSurah(cmd.Context(), info.ID)
		if layer == resolver.LayerNone {
			return fmt.Errorf("surah %d is not available offline and the network is unreachable", info.ID)
		}

		data := struct {
			Surah  domain.SurahInfo `json:"surah" yaml:"surah"`
			Source resolver.Layer   `json:"source" yaml:"source"`
			Verses []verseOutput    `json:"verses" yaml:"verses"`
		}{info, layer, toVerseOutput(verses)}

		return output(cmd.OutOrStdout(), data, func(w io.Writer) error {
			fmt.Fprintln(w, titleStyle.Render(info.Name)+" "+subtitleStyle.Render(info.Transliteration)+" "+dimStyle.Render(string(layer)))
			for _, v := range verses {
				printVerse(w, v)
			}
			return nil
		})
	}),
}

var readPageCmd = &cobra.Command{
	Use:   "page <number>",
	Short: "Print one mushaf page",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil || !domain.ValidPage(n) {
			return fmt.Errorf("%w: page %q (1-%d)", domain.ErrInvalidKey, args[0], domain.PageCount)
		}
		page, layer := a.resolver.ResolvePage(cmd.Context(), n)
		if layer == resolver.LayerNone {
			return fmt.Errorf("page %d is not available offline and the network is unreachable", n)
		}

		data := struct {
			Page   int                `json:"page" yaml:"page"`
			Source resolver.Layer     `json:"source" yaml:"source"`
			Surahs []domain.SurahInfo `json:"surahs" yaml:"surahs"`
			Verses []verseOutput      `json:"verses" yaml:"verses"`
		}{Page: page.Number, Source: layer, Verses: toVerseOutput(page.Verses)}
		for _, id := range page.SurahIDs() {
			data.Surahs = append(data.Surahs, page.Surahs[id])
		}

		return output(cmd.OutOrStdout(), data, func(w io.Writer) error {
			fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Page %d", page.Number))+" "+dimStyle.Render(string(layer)))
			current := 0
			for _, v := range page.Verses {
				if v.Surah != nil && v.Surah.ID != current {
					current = v.Surah.ID
					fmt.Fprintln(w, accentStyle.Render("سورة "+v.Surah.Name))
				}
				printVerse(w, v)
			}
			return nil
		})
	}),
}

var readTafseerCmd = &cobra.Command{
	Use:   "tafseer <surah> <verse>",
	Short: "Print the commentary of one verse",
	Args:  cobra.ExactArgs(2),
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		info, verse, err := parseVerseRef(args[0], args[1])
		if err != nil {
			return err
		}
		edition := a.offline.Edition()
		if readEdition != "" {
			edition = readEdition
		}

		text, layer := a.resolver.ResolveCommentary(cmd.Context(), info.ID, verse, edition)
		data := map[string]any{
			"surah":   info.ID,
			"verse":   verse,
			"edition": edition,
			"source":  layer,
			"text":    text,
		}
		return output(cmd.OutOrStdout(), data, func(w io.Writer) error {
			fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s %d", info.Name, verse))+" "+dimStyle.Render(edition+" "+string(layer)))
			body := lipgloss.NewStyle().Width(min(terminalWidth(), 100)).Render(text)
			_, err := fmt.Fprintln(w, body)
			return err
		})
	}),
}

var readAudioCmd = &cobra.Command{
	Use:   "audio <surah> <verse>",
	Short: "Write the stored recitation of one verse to a file",
	Args:  cobra.ExactArgs(2),
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		info, verse, err := parseVerseRef(args[0], args[1])
		if err != nil {
			return err
		}
		narratorID := a.cfg.Audio.Narrator
		if readNarrator != "" {
			narratorID = readNarrator
		}

		blob, ok := a.offline.GetAudioBlob(cmd.Context(), narratorID, info.ID, verse)
		if !ok {
			return fmt.Errorf("no stored audio for %s %d:%d (run 'bayan download audio %s')", narratorID, info.ID, verse, narratorID)
		}

		out := readOut
		if out == "" {
			out = fmt.Sprintf("%s_%03d%03d.mp3", narratorID, info.ID, verse)
		}
		if out == "-" {
			_, err := cmd.OutOrStdout().Write(blob)
			return err
		}
		if err := os.WriteFile(out, blob, 0o644); err != nil {
			return fmt.Errorf("failed to write audio: %w", err)
		}
		return printDone(cmd.OutOrStdout(), fmt.Sprintf("Wrote %d bytes to %s.", len(blob), out))
	}),
}

func init() {
	readTafseerCmd.Flags().StringVar(&readEdition, "edition", "", "commentary edition (default: commentary.edition)")
	readAudioCmd.Flags().StringVar(&readNarrator, "narrator", "", "narrator id (default: audio.narrator)")
	readAudioCmd.Flags().StringVar(&readOut, "out", "", "output file, - for stdout (default: <narrator>_<sss><vvv>.mp3)")

	readCmd.AddCommand(readSurahCmd, readPageCmd, readTafseerCmd, readAudioCmd)
}

type verseOutput struct {
	ID     int    `json:"id" yaml:"id"`
	Surah  int    `json:"surah,omitempty" yaml:"surah,omitempty"`
	Number int    `json:"number" yaml:"number"`
	Juz    int    `json:"juz,omitempty" yaml:"juz,omitempty"`
	Text   string `json:"text" yaml:"text"`
}

func toVerseOutput(verses []domain.Verse) []verseOutput {
	out := make([]verseOutput, 0, len(verses))
	for _, v := range verses {
		vo := verseOutput{ID: v.ID, Number: v.Number, Juz: v.Juz, Text: v.Text}
		if v.Surah != nil {
			vo.Surah = v.Surah.ID
		}
		out = append(out, vo)
	}
	return out
}

func printVerse(w io.Writer, v domain.Verse) {
	fmt.Fprintf(w, "%s %s\n", v.Text, accentStyle.Render(fmt.Sprintf("﴿%d﴾", v.Number)))
}

// parseSurah accepts a surah number or a fuzzy transliterated name.
func parseSurah(arg string) (domain.SurahInfo, error) {
	if id, err := strconv.Atoi(arg); err == nil {
		if info, ok := catalog.Surah(id); ok {
			return info, nil
		}
		return domain.SurahInfo{}, fmt.Errorf("%w: surah %d (1-%d)", domain.ErrInvalidKey, id, domain.SurahCount)
	}
	matches := catalog.SearchSurahs(arg)
	if len(matches) == 0 {
		return domain.SurahInfo{}, fmt.Errorf("%w: no surah matches %q", domain.ErrInvalidKey, arg)
	}
	return matches[0], nil
}

func parseVerseRef(surahArg, verseArg string) (domain.SurahInfo, int, error) {
	info, err := parseSurah(surahArg)
	if err != nil {
		return info, 0, err
	}
	verse, err := strconv.Atoi(verseArg)
	if err != nil || verse < 1 || verse > info.VersesCount {
		return info, 0, fmt.Errorf("%w: verse %q of %s (1-%d)", domain.ErrInvalidKey, verseArg, info.Transliteration, info.VersesCount)
	}
	return info, verse, nil
}
