package alquran

import (
	"github.com/albayan/bayan/internal/adapter/source/httpx"
	"github.com/albayan/bayan/internal/catalog"
	"github.com/albayan/bayan/internal/domain"
)

// MapSurahInfo converts an API surah header to domain form. Fields the API
// does not carry (start page) come from the catalog.
func MapSurahInfo(m SurahMeta) domain.SurahInfo {
	info := domain.SurahInfo{
		ID:              m.Number,
		Name:            m.Name,
		EnglishName:     m.EnglishNameTranslation,
		Transliteration: m.EnglishName,
		VersesCount:     m.NumberOfAyahs,
		RevelationPlace: domain.ParseRevelationPlace(m.RevelationType),
	}
	if known, ok := catalog.Surah(m.Number); ok {
		info.StartPage = known.StartPage
		if info.VersesCount == 0 {
			info.VersesCount = known.VersesCount
		}
		if info.Name == "" {
			info.Name = known.Name
		}
	}
	return info
}

// MapVerse converts an API ayah to a domain verse
func MapVerse(a Ayah) domain.Verse {
	return domain.Verse{
		ID:     a.Number,
		Number: a.NumberInSurah,
		Text:   a.Text,
		Juz:    a.Juz,
	}
}

// MapVerses converts a run of ayahs
func MapVerses(ayahs []Ayah) []domain.Verse {
	verses := make([]domain.Verse, 0, len(ayahs))
	for _, a := range ayahs {
		verses = append(verses, MapVerse(a))
	}
	return verses
}

// MapCorpus converts the full scripture document. Each verse keeps its page
// tag; the surah verse count is taken from the verses actually delivered.
func MapCorpus(q Quran) []domain.CorpusSurah {
	out := make([]domain.CorpusSurah, 0, len(q.Surahs))
	for _, s := range q.Surahs {
		info := MapSurahInfo(s.SurahMeta)
		info.VersesCount = len(s.Ayahs)
		if info.StartPage == 0 && len(s.Ayahs) > 0 {
			info.StartPage = s.Ayahs[0].Page
		}

		verses := make([]domain.TaggedVerse, 0, len(s.Ayahs))
		for _, a := range s.Ayahs {
			verses = append(verses, domain.TaggedVerse{Verse: MapVerse(a), Page: a.Page})
		}
		out = append(out, domain.CorpusSurah{Info: info, Verses: verses})
	}
	return out
}

// MapPage converts a page document, collecting one header per surah present
func MapPage(p Page) *domain.PageRecord {
	rec := &domain.PageRecord{
		Number: p.Number,
		Verses: make([]domain.Verse, 0, len(p.Ayahs)),
		Surahs: make(map[int]domain.SurahInfo),
	}
	for _, a := range p.Ayahs {
		v := MapVerse(a)
		if a.Surah != nil {
			info, ok := rec.Surahs[a.Surah.Number]
			if !ok {
				info = MapSurahInfo(*a.Surah)
				rec.Surahs[info.ID] = info
			}
			v.Surah = &info
		}
		rec.Verses = append(rec.Verses, v)
	}
	return rec
}

// MapCommentaryCorpus converts an edition document into one record per surah.
// Markup is stripped from every verse.
func MapCommentaryCorpus(edition string, q Quran) []domain.CommentaryRecord {
	out := make([]domain.CommentaryRecord, 0, len(q.Surahs))
	for _, s := range q.Surahs {
		rec := domain.CommentaryRecord{
			ID:      s.Number,
			Edition: edition,
			Verses:  make(map[int]string, len(s.Ayahs)),
		}
		for _, a := range s.Ayahs {
			rec.Verses[a.NumberInSurah] = httpx.StripHTML(a.Text)
		}
		out = append(out, rec)
	}
	return out
}
