package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Corpus dimensions of the standard Madani print layout.
const (
	SurahCount = 114
	PageCount  = 604
	VerseCount = 6236
	JuzCount   = 30

	// MaxSurahVerses is the verse count of the longest surah.
	MaxSurahVerses = 286
)

// RevelationPlace records where a surah was revealed.
type RevelationPlace string

const (
	Meccan  RevelationPlace = "Meccan"
	Medinan RevelationPlace = "Medinan"
)

// ParseRevelationPlace maps the upstream "revelationType" value.
// Anything that is not explicitly Meccan is treated as Medinan.
func ParseRevelationPlace(s string) RevelationPlace {
	if strings.EqualFold(strings.TrimSpace(s), string(Meccan)) {
		return Meccan
	}
	return Medinan
}

// SurahInfo is the header information for one surah.
type SurahInfo struct {
	ID              int             `json:"id"`
	Name            string          `json:"name"`
	EnglishName     string          `json:"englishName,omitempty"`
	Transliteration string          `json:"transliteration,omitempty"`
	VersesCount     int             `json:"versesCount"`
	RevelationPlace RevelationPlace `json:"revelationPlace,omitempty"`
	StartPage       int             `json:"startPage,omitempty"`
}

// Verse is a single ayah. ID is the corpus-wide number (1..6236),
// Number is the position inside its surah.
type Verse struct {
	ID     int        `json:"id"`
	Number int        `json:"number"`
	Text   string     `json:"text"`
	Juz    int        `json:"juz,omitempty"`
	Surah  *SurahInfo `json:"surah,omitempty"`
}

// SurahRecord holds every verse of one surah in canonical order.
type SurahRecord struct {
	ID     int       `json:"id"`
	Info   SurahInfo `json:"info"`
	Verses []Verse   `json:"verses"`
}

// PageRecord holds the verses printed on one mushaf page together with
// the headers of every surah that has at least one verse on it.
type PageRecord struct {
	Number int               `json:"number"`
	Verses []Verse           `json:"ayahs"`
	Surahs map[int]SurahInfo `json:"surahs"`
}

// SurahIDs returns the ids of the surahs present on the page in ascending order.
func (p *PageRecord) SurahIDs() []int {
	ids := make([]int, 0, len(p.Surahs))
	for id := range p.Surahs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// CommentaryRecord maps verse number to commentary text for one surah of one edition.
type CommentaryRecord struct {
	ID      int            `json:"id"`
	Edition string         `json:"edition"`
	Verses  map[int]string `json:"verses"`
}

// AudioKey addresses one recited verse of one narrator.
type AudioKey struct {
	Narrator string
	Surah    int
	Verse    int
}

// String renders the composite storage key "narrator:surah:verse".
func (k AudioKey) String() string {
	return fmt.Sprintf("%s:%d:%d", k.Narrator, k.Surah, k.Verse)
}

func (k AudioKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *AudioKey) UnmarshalText(b []byte) error {
	parsed, err := ParseAudioKey(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseAudioKey is the inverse of AudioKey.String.
func ParseAudioKey(s string) (AudioKey, error) {
	i := strings.LastIndex(s, ":")
	if i <= 0 {
		return AudioKey{}, fmt.Errorf("%w: audio key %q", ErrInvalidKey, s)
	}
	j := strings.LastIndex(s[:i], ":")
	if j <= 0 {
		return AudioKey{}, fmt.Errorf("%w: audio key %q", ErrInvalidKey, s)
	}
	surah, err := strconv.Atoi(s[j+1 : i])
	if err != nil {
		return AudioKey{}, fmt.Errorf("%w: audio key %q", ErrInvalidKey, s)
	}
	verse, err := strconv.Atoi(s[i+1:])
	if err != nil {
		return AudioKey{}, fmt.Errorf("%w: audio key %q", ErrInvalidKey, s)
	}
	return AudioKey{Narrator: s[:j], Surah: surah, Verse: verse}, nil
}

// ValidSurah reports whether id is a surah number.
func ValidSurah(id int) bool { return id >= 1 && id <= SurahCount }

// ValidPage reports whether n is a mushaf page number.
func ValidPage(n int) bool { return n >= 1 && n <= PageCount }

// Collection names one of the persistent collections.
type Collection string

const (
	CollectionSurahs     Collection = "surahs"
	CollectionPages      Collection = "pages"
	CollectionCommentary Collection = "tafseer"
	CollectionAudio      Collection = "audio"
)

// Collections lists every collection in schema order.
func Collections() []Collection {
	return []Collection{CollectionSurahs, CollectionPages, CollectionCommentary, CollectionAudio}
}
