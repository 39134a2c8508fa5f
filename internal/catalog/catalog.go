// Package catalog holds the static indexes the cache relies on: the 114
// surah headers of the standard mushaf and the registry of narrators.
package catalog

import (
	"sort"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/albayan/bayan/internal/domain"
)

// Surahs returns a copy of the full surah index in canonical order.
func Surahs() []domain.SurahInfo {
	out := make([]domain.SurahInfo, len(surahTable))
	copy(out, surahTable[:])
	return out
}

// Surah returns the index entry for one surah.
func Surah(id int) (domain.SurahInfo, bool) {
	if !domain.ValidSurah(id) {
		return domain.SurahInfo{}, false
	}
	return surahTable[id-1], true
}

// EndPage returns the last mushaf page that carries verses of the surah.
// Surahs sharing a page with their successor end on the successor's start page.
func EndPage(id int) int {
	if !domain.ValidSurah(id) {
		return 0
	}
	if id == domain.SurahCount {
		return domain.PageCount
	}
	return surahTable[id].StartPage
}

// FirstVerseID returns the corpus-wide id of the first verse of a surah.
func FirstVerseID(id int) int {
	if !domain.ValidSurah(id) {
		return 0
	}
	n := 1
	for i := 0; i < id-1; i++ {
		n += surahTable[i].VersesCount
	}
	return n
}

// SearchSurahs ranks surahs whose transliterated name fuzzily matches query.
// A numeric query matches the surah with that number first.
func SearchSurahs(query string) []domain.SurahInfo {
	query = strings.TrimSpace(query)
	if query == "" {
		return Surahs()
	}

	names := make([]string, len(surahTable))
	for i, s := range surahTable {
		names[i] = s.Transliteration
	}

	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].Distance < ranks[j].Distance
	})

	results := make([]domain.SurahInfo, 0, len(ranks)+1)
	if id, ok := parseNumber(query); ok {
		if s, ok := Surah(id); ok {
			results = append(results, s)
		}
	}
	for _, r := range ranks {
		results = append(results, surahTable[r.OriginalIndex])
	}
	return results
}

func parseNumber(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || !domain.ValidSurah(n) {
		return 0, false
	}
	return n, true
}
