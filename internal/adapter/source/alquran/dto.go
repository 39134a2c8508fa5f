package alquran

// Envelope is the wrapper around every api.alquran.cloud response
type Envelope[T any] struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   T      `json:"data"`
}

// OK reports whether the API flagged the response as successful
func (e Envelope[T]) OK() bool {
	return e.Status == "OK"
}

// SurahMeta is the surah header shared by all endpoints
type SurahMeta struct {
	Number                 int    `json:"number"`
	Name                   string `json:"name"`
	EnglishName            string `json:"englishName"`
	EnglishNameTranslation string `json:"englishNameTranslation"`
	NumberOfAyahs          int    `json:"numberOfAyahs,omitempty"`
	RevelationType         string `json:"revelationType"`
}

// Ayah is a single verse. Surah is only set on page and ayah endpoints.
type Ayah struct {
	Number        int        `json:"number"`
	Text          string     `json:"text"`
	NumberInSurah int        `json:"numberInSurah"`
	Juz           int        `json:"juz"`
	Page          int        `json:"page"`
	Surah         *SurahMeta `json:"surah,omitempty"`
}

// Surah is a surah with its verses (/v1/surah and /v1/quran documents)
type Surah struct {
	SurahMeta
	Ayahs []Ayah `json:"ayahs"`
}

// Quran is the full-corpus document of one edition (/v1/quran/{edition})
type Quran struct {
	Surahs []Surah `json:"surahs"`
}

// Page is one mushaf page (/v1/page/{n})
type Page struct {
	Number int    `json:"number"`
	Ayahs  []Ayah `json:"ayahs"`
}

// Meta is the corpus metadata document (/v1/meta)
type Meta struct {
	Ayahs struct {
		Count int `json:"count"`
	} `json:"ayahs"`
	Surahs struct {
		Count      int         `json:"count"`
		References []SurahMeta `json:"references"`
	} `json:"surahs"`
}
