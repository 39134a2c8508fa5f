package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAudioKey(t *testing.T) {
	tests := []struct {
		in      string
		want    AudioKey
		wantErr bool
	}{
		{in: "alafasy:1:1", want: AudioKey{Narrator: "alafasy", Surah: 1, Verse: 1}},
		{in: "husary_mujawwad:114:6", want: AudioKey{Narrator: "husary_mujawwad", Surah: 114, Verse: 6}},
		{in: "odd:name:2:255", want: AudioKey{Narrator: "odd:name", Surah: 2, Verse: 255}},
		{in: "alafasy:1", wantErr: true},
		{in: ":1:1", wantErr: true},
		{in: "alafasy:x:1", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAudioKey(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidKey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}
}

func TestParseRevelationPlace(t *testing.T) {
	assert.Equal(t, Meccan, ParseRevelationPlace("Meccan"))
	assert.Equal(t, Meccan, ParseRevelationPlace(" meccan "))
	assert.Equal(t, Medinan, ParseRevelationPlace("Medinan"))
	assert.Equal(t, Medinan, ParseRevelationPlace(""))
}

func TestProgressPercent(t *testing.T) {
	assert.Equal(t, -1, Progress{Message: "connecting"}.Percent())
	assert.Equal(t, 0, Progress{Done: 0, Total: 114}.Percent())
	assert.Equal(t, 50, Progress{Done: 57, Total: 114}.Percent())
	assert.Equal(t, 100, Progress{Done: 114, Total: 114}.Percent())

	var f ProgressFunc
	assert.NotPanics(t, func() { f.Report(Progress{Message: "nil is fine"}) })
}

func TestAudioSummaryAdd(t *testing.T) {
	var s AudioSummary
	s.Add(VerseResult{Key: AudioKey{Narrator: "a", Surah: 1, Verse: 1}, Bytes: 10})
	s.Add(VerseResult{Key: AudioKey{Narrator: "a", Surah: 1, Verse: 2}, Err: ErrUpstreamFetchFailed})

	assert.Equal(t, 2, s.Attempted)
	assert.Equal(t, 1, s.Stored)
	assert.Equal(t, 1, s.Failed)
	assert.Equal(t, []AudioKey{{Narrator: "a", Surah: 1, Verse: 2}}, s.Failures)
}

func TestPageRecords(t *testing.T) {
	baqarah := SurahInfo{ID: 2, Name: "البقرة", VersesCount: 2}
	imran := SurahInfo{ID: 3, Name: "آل عمران", VersesCount: 2}
	corpus := []CorpusSurah{
		{Info: baqarah, Verses: []TaggedVerse{
			{Verse: Verse{ID: 292, Number: 285}, Page: 49},
			{Verse: Verse{ID: 293, Number: 286}, Page: 50},
		}},
		{Info: imran, Verses: []TaggedVerse{
			{Verse: Verse{ID: 294, Number: 1}, Page: 50},
			{Verse: Verse{ID: 295, Number: 2}, Page: 50},
		}},
	}

	pages := PageRecords(corpus)
	require.Len(t, pages, 2)
	assert.Equal(t, 49, pages[0].Number)
	assert.Equal(t, []int{2}, pages[0].SurahIDs())

	p50 := pages[1]
	assert.Equal(t, 50, p50.Number)
	assert.Equal(t, []int{2, 3}, p50.SurahIDs())
	require.Len(t, p50.Verses, 3)
	assert.Equal(t, []int{293, 294, 295}, []int{p50.Verses[0].ID, p50.Verses[1].ID, p50.Verses[2].ID})
	assert.Equal(t, 3, p50.Verses[2].Surah.ID)

	surahs := SurahRecords(corpus)
	require.Len(t, surahs, 2)
	assert.Equal(t, 2, surahs[0].ID)
	assert.Len(t, surahs[1].Verses, 2)
	assert.Equal(t, "آل عمران", surahs[1].Verses[0].Surah.Name)
}

func validCorpus() []CorpusSurah {
	corpus := make([]CorpusSurah, 0, SurahCount)
	for id := 1; id <= SurahCount; id++ {
		corpus = append(corpus, CorpusSurah{
			Info:   SurahInfo{ID: id, VersesCount: 1},
			Verses: []TaggedVerse{{Verse: Verse{ID: id, Number: 1}, Page: min(id, PageCount)}},
		})
	}
	return corpus
}

func TestValidateCorpus(t *testing.T) {
	require.NoError(t, ValidateCorpus(validCorpus()))

	tests := []struct {
		name   string
		mangle func(c []CorpusSurah) []CorpusSurah
	}{
		{"empty", func(c []CorpusSurah) []CorpusSurah { return nil }},
		{"short", func(c []CorpusSurah) []CorpusSurah { return c[1:] }},
		{"id zero", func(c []CorpusSurah) []CorpusSurah { c[113].Info.ID = 0; return c }},
		{"duplicate id", func(c []CorpusSurah) []CorpusSurah { c[5].Info.ID = 5; return c }},
		{"no verses", func(c []CorpusSurah) []CorpusSurah { c[0].Verses = nil; return c }},
		{"page zero", func(c []CorpusSurah) []CorpusSurah { c[3].Verses[0].Page = 0; return c }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, ValidateCorpus(tt.mangle(validCorpus())), ErrMalformedContent)
		})
	}
}

func TestValidateIndex(t *testing.T) {
	require.NoError(t, ValidateIndex([]SurahInfo{{ID: 1, VersesCount: 7}, {ID: 2, VersesCount: MaxSurahVerses}}))

	tests := []struct {
		name  string
		index []SurahInfo
	}{
		{"empty", nil},
		{"negative count", []SurahInfo{{ID: 1, VersesCount: -1}}},
		{"zero count", []SurahInfo{{ID: 1, VersesCount: 0}}},
		{"huge count", []SurahInfo{{ID: 1, VersesCount: 1 << 30}}},
		{"id out of range", []SurahInfo{{ID: 115, VersesCount: 3}}},
		{"duplicate id", []SurahInfo{{ID: 1, VersesCount: 7}, {ID: 1, VersesCount: 7}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, ValidateIndex(tt.index), ErrMalformedContent)
		})
	}
}
