// Package testutil provides a synthetic scripture corpus and in-memory
// upstream fakes for package tests.
package testutil

import (
	"fmt"

	"github.com/albayan/bayan/internal/catalog"
	"github.com/albayan/bayan/internal/domain"
)

// Corpus builds a synthetic full corpus: real surah sizes and start pages,
// verses spread evenly over each surah's page range, placeholder text.
func Corpus() []domain.CorpusSurah {
	out := make([]domain.CorpusSurah, 0, domain.SurahCount)
	id := 1
	for _, info := range catalog.Surahs() {
		verses := make([]domain.TaggedVerse, 0, info.VersesCount)
		for n := 1; n <= info.VersesCount; n++ {
			page := PageOf(info.ID, n)
			verses = append(verses, domain.TaggedVerse{
				Verse: domain.Verse{
					ID:     id,
					Number: n,
					Text:   VerseText(info.ID, n),
					Juz:    juzOf(page),
				},
				Page: page,
			})
			id++
		}
		out = append(out, domain.CorpusSurah{Info: info, Verses: verses})
	}
	return out
}

// PageOf places verse n of a surah on its synthetic page.
func PageOf(surahID, n int) int {
	info, _ := catalog.Surah(surahID)
	start, end := info.StartPage, catalog.EndPage(surahID)
	return start + (n-1)*(end-start+1)/info.VersesCount
}

// VerseText is the placeholder text of a synthetic verse.
func VerseText(surahID, n int) string {
	return fmt.Sprintf("آية %d من سورة %d", n, surahID)
}

// CommentaryText is the placeholder commentary of a synthetic verse.
func CommentaryText(edition string, surahID, n int) string {
	return fmt.Sprintf("تفسير الآية %d من سورة %d (%s)", n, surahID, edition)
}

// CommentaryRecords builds a full synthetic commentary edition.
func CommentaryRecords(edition string) []domain.CommentaryRecord {
	out := make([]domain.CommentaryRecord, 0, domain.SurahCount)
	for _, info := range catalog.Surahs() {
		rec := domain.CommentaryRecord{ID: info.ID, Edition: edition, Verses: make(map[int]string, info.VersesCount)}
		for n := 1; n <= info.VersesCount; n++ {
			rec.Verses[n] = CommentaryText(edition, info.ID, n)
		}
		out = append(out, rec)
	}
	return out
}

func juzOf(page int) int {
	if page < 2 {
		return 1
	}
	return min((page-2)/20+1, domain.JuzCount)
}
