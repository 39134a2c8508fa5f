package qurancom

// TafsirResponse is the body of /api/v4/tafsirs/{id}/by_ayah/{key}
type TafsirResponse struct {
	Tafsir Tafsir `json:"tafsir"`
}

// Tafsir is one commentary entry; Text carries HTML markup
type Tafsir struct {
	ResourceID   int    `json:"resource_id"`
	ResourceName string `json:"resource_name"`
	LanguageID   int    `json:"language_id"`
	Slug         string `json:"slug"`
	Text         string `json:"text"`
}
