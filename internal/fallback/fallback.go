// Package fallback is the small scripture dataset compiled into the binary.
// It answers a few pages when neither the offline store nor the network can.
package fallback

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/albayan/bayan/internal/catalog"
	"github.com/albayan/bayan/internal/domain"
)

//go:embed data/fallback.json
var raw []byte

type fileVerse struct {
	ID     int    `json:"id"`
	Surah  int    `json:"surah"`
	Number int    `json:"number"`
	Juz    int    `json:"juz"`
	Text   string `json:"text"`
}

type filePage struct {
	Number int         `json:"number"`
	Verses []fileVerse `json:"verses"`
}

type file struct {
	Pages []filePage `json:"pages"`
}

// Dataset is an immutable set of pages. Accessors return copies.
type Dataset struct {
	pages map[int]*domain.PageRecord
}

var load = sync.OnceValues(func() (*Dataset, error) {
	return Parse(raw)
})

// Load returns the embedded dataset, parsing it on first use.
func Load() (*Dataset, error) {
	return load()
}

// Parse builds a dataset from its JSON form. Surah headers are taken
// from the catalog.
func Parse(data []byte) (*Dataset, error) {
	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fallback dataset: %w", err)
	}

	ds := &Dataset{pages: make(map[int]*domain.PageRecord, len(f.Pages))}
	for _, p := range f.Pages {
		if !domain.ValidPage(p.Number) {
			return nil, fmt.Errorf("fallback dataset: invalid page %d", p.Number)
		}
		rec := &domain.PageRecord{
			Number: p.Number,
			Verses: make([]domain.Verse, 0, len(p.Verses)),
			Surahs: make(map[int]domain.SurahInfo),
		}
		for _, v := range p.Verses {
			info, ok := catalog.Surah(v.Surah)
			if !ok {
				return nil, fmt.Errorf("fallback dataset: page %d: invalid surah %d", p.Number, v.Surah)
			}
			rec.Surahs[info.ID] = info
			rec.Verses = append(rec.Verses, domain.Verse{
				ID:     v.ID,
				Number: v.Number,
				Text:   v.Text,
				Juz:    v.Juz,
				Surah:  &info,
			})
		}
		ds.pages[p.Number] = rec
	}
	return ds, nil
}

// Pages lists the page numbers the dataset carries in ascending order.
func (d *Dataset) Pages() []int {
	out := make([]int, 0, len(d.pages))
	for n := range d.pages {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// Page returns one page if the dataset carries it.
func (d *Dataset) Page(n int) (*domain.PageRecord, bool) {
	p, ok := d.pages[n]
	if !ok {
		return nil, false
	}
	return clonePage(p), true
}

// Surah collects every carried verse of a surah, ordered by verse number.
func (d *Dataset) Surah(id int) ([]domain.Verse, bool) {
	var verses []domain.Verse
	for _, p := range d.pages {
		for _, v := range p.Verses {
			if v.Surah != nil && v.Surah.ID == id {
				verses = append(verses, cloneVerse(v))
			}
		}
	}
	if len(verses) == 0 {
		return nil, false
	}
	sort.Slice(verses, func(i, j int) bool { return verses[i].Number < verses[j].Number })
	return verses, true
}

func cloneVerse(v domain.Verse) domain.Verse {
	if v.Surah != nil {
		info := *v.Surah
		v.Surah = &info
	}
	return v
}

func clonePage(p *domain.PageRecord) *domain.PageRecord {
	out := &domain.PageRecord{
		Number: p.Number,
		Verses: make([]domain.Verse, len(p.Verses)),
		Surahs: make(map[int]domain.SurahInfo, len(p.Surahs)),
	}
	for i, v := range p.Verses {
		out.Verses[i] = cloneVerse(v)
	}
	for id, info := range p.Surahs {
		out.Surahs[id] = info
	}
	return out
}
