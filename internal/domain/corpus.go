package domain

import (
	"fmt"
	"sort"
)

// TaggedVerse is a verse as delivered by the corpus document, tagged with
// the mushaf page it is printed on.
type TaggedVerse struct {
	Verse
	Page int
}

// CorpusSurah is one surah of the full corpus document.
type CorpusSurah struct {
	Info   SurahInfo
	Verses []TaggedVerse
}

// SurahRecords builds one record per surah, verses in document order.
// Every verse carries its surah header.
func SurahRecords(corpus []CorpusSurah) []SurahRecord {
	out := make([]SurahRecord, 0, len(corpus))
	for _, s := range corpus {
		info := s.Info
		rec := SurahRecord{ID: info.ID, Info: info, Verses: make([]Verse, 0, len(s.Verses))}
		for _, tv := range s.Verses {
			v := tv.Verse
			v.Surah = &info
			rec.Verses = append(rec.Verses, v)
		}
		out = append(out, rec)
	}
	return out
}

// PageRecords groups the corpus by page tag. Verses keep document order
// within a page and each page records the header of every surah that has
// a verse on it. Pages are returned in ascending order.
func PageRecords(corpus []CorpusSurah) []PageRecord {
	byNumber := make(map[int]*PageRecord)
	for _, s := range corpus {
		info := s.Info
		for _, tv := range s.Verses {
			p, ok := byNumber[tv.Page]
			if !ok {
				p = &PageRecord{Number: tv.Page, Surahs: make(map[int]SurahInfo)}
				byNumber[tv.Page] = p
			}
			v := tv.Verse
			v.Surah = &info
			p.Verses = append(p.Verses, v)
			p.Surahs[info.ID] = info
		}
	}

	out := make([]PageRecord, 0, len(byNumber))
	for _, p := range byNumber {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

// ValidateCorpus checks a full scripture document before it is stored:
// every surah exactly once, none empty, every page tag a mushaf page.
func ValidateCorpus(corpus []CorpusSurah) error {
	if len(corpus) != SurahCount {
		return fmt.Errorf("%w: corpus has %d surahs, want %d", ErrMalformedContent, len(corpus), SurahCount)
	}
	seen := make(map[int]bool, len(corpus))
	for _, s := range corpus {
		id := s.Info.ID
		if !ValidSurah(id) || seen[id] {
			return fmt.Errorf("%w: corpus surah id %d is out of range or repeated", ErrMalformedContent, id)
		}
		seen[id] = true
		if len(s.Verses) == 0 {
			return fmt.Errorf("%w: corpus surah %d has no verses", ErrMalformedContent, id)
		}
		for _, v := range s.Verses {
			if !ValidPage(v.Page) {
				return fmt.Errorf("%w: verse %d:%d has page %d", ErrMalformedContent, id, v.Number, v.Page)
			}
		}
	}
	return nil
}

// ValidateIndex checks the surah metadata that sizes audio batches: ids in
// range and unique, verse counts between 1 and MaxSurahVerses.
func ValidateIndex(index []SurahInfo) error {
	if len(index) == 0 {
		return fmt.Errorf("%w: surah index is empty", ErrMalformedContent)
	}
	seen := make(map[int]bool, len(index))
	for _, s := range index {
		if !ValidSurah(s.ID) || seen[s.ID] {
			return fmt.Errorf("%w: surah index id %d is out of range or repeated", ErrMalformedContent, s.ID)
		}
		seen[s.ID] = true
		if s.VersesCount < 1 || s.VersesCount > MaxSurahVerses {
			return fmt.Errorf("%w: surah %d has %d verses", ErrMalformedContent, s.ID, s.VersesCount)
		}
	}
	return nil
}
