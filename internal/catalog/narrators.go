package catalog

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Narrator is a reciter with a complete per-verse audio set.
type Narrator struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Subfolder string `json:"subfolder" yaml:"subfolder"`
}

// DefaultNarratorID is used when no narrator is configured.
const DefaultNarratorID = "alafasy"

var narrators = []Narrator{
	// Hafs an Asim
	{ID: "alafasy", Name: "مشاري راشد العفاسي", Subfolder: "Alafasy_128kbps"},
	{ID: "ajmy", Name: "أحمد بن علي العجمي", Subfolder: "Ahmed_ibn_Ali_al-Ajamy_128kbps"},
	{ID: "sudais", Name: "عبد الرحمن السديس", Subfolder: "Abdurrahmaan_As-Sudais_192kbps"},
	{ID: "shuraym", Name: "سعود الشريم", Subfolder: "Saood_ash-Shuraym_128kbps"},
	{ID: "maher", Name: "ماهر المعيقلي", Subfolder: "MaherAlMuaiqly128kbps"},
	{ID: "yasser", Name: "ياسر الدوسري", Subfolder: "Yasser_Ad-Dussary_128kbps"},
	{ID: "ghamadi", Name: "سعد الغامدي", Subfolder: "Ghamadi_40kbps"},
	{ID: "fares", Name: "فارس عباد", Subfolder: "Fares_Abbad_64kbps"},
	{ID: "nasser", Name: "ناصر القطامي", Subfolder: "Nasser_Alqatami_128kbps"},
	{ID: "shatri", Name: "أبو بكر الشاطري", Subfolder: "Abu_Bakr_Ash-Shatri_128kbps"},

	// Murattal and mujawwad sets
	{ID: "husary", Name: "محمود خليل الحصري (مرتل)", Subfolder: "Husary_128kbps"},
	{ID: "husary_mujawwad", Name: "محمود خليل الحصري (مجود)", Subfolder: "Husary_128kbps_Mujawwad"},
	{ID: "minshawi", Name: "محمد صديق المنشاوي (مرتل)", Subfolder: "Minshawy_Murattal_128kbps"},
	{ID: "minshawi_mujawwad", Name: "محمد صديق المنشاوي (مجود)", Subfolder: "Minshawy_Mujawwad_192kbps"},
	{ID: "abdulbasit", Name: "عبد الباسط عبد الصمد (مرتل)", Subfolder: "Abdul_Basit_Murattal_192kbps"},
	{ID: "abdulbasit_mujawwad", Name: "عبد الباسط عبد الصمد (مجود)", Subfolder: "Abdul_Basit_Mujawwad_128kbps"},

	// Warsh and Qaloon
	{ID: "yassin_warsh", Name: "ياسين الجزائري (ورش)", Subfolder: "Warsh_Yassin_Jazairi_64kbps"},
	{ID: "dokali_qaloon", Name: "الدكالي محمد العالم (قالون)", Subfolder: "Dookali_Mohammad_Al-Alim_128kbps"},

	{ID: "juhany", Name: "عبدالله الجهني", Subfolder: "Abdullaah_3awwaad_Al-Juhaynee_128kbps"},
	{ID: "hudhaify", Name: "علي الحذيفي", Subfolder: "Hudhaify_128kbps"},
	{ID: "ali_jaber", Name: "علي جابر", Subfolder: "Ali_Jaber_64kbps"},
	{ID: "ayyoub", Name: "محمد أيوب", Subfolder: "Muhammad_Ayyoub_128kbps"},
	{ID: "budair", Name: "صلاح البدير", Subfolder: "Salah_Al_Budair_128kbps"},
	{ID: "hani", Name: "هاني الرفاعي", Subfolder: "Hani_Rifai_192kbps"},
	{ID: "basfar", Name: "عبد الله بصفر", Subfolder: "Abdullah_Basfar_192kbps"},
	{ID: "bukhatir", Name: "صلاح بو خاطر", Subfolder: "Salah_Bukhatir_128kbps"},
	{ID: "suwayd", Name: "أيمن سويد", Subfolder: "Ayman_Sowaid_64kbps"},
	{ID: "jibreel", Name: "محمد جبريل", Subfolder: "Muhammad_Jibreel_128kbps"},
}

// Narrators returns a copy of the registry.
func Narrators() []Narrator {
	out := make([]Narrator, len(narrators))
	copy(out, narrators)
	return out
}

// LookupNarrator returns the narrator with the given id.
func LookupNarrator(id string) (Narrator, bool) {
	for _, n := range narrators {
		if n.ID == id {
			return n, true
		}
	}
	return Narrator{}, false
}

// NarratorOrDefault returns the narrator with the given id, or the
// default narrator when the id is unknown.
func NarratorOrDefault(id string) Narrator {
	if n, ok := LookupNarrator(id); ok {
		return n
	}
	return narrators[0]
}

// narratorIndex implements fuzzy.Source over id and subfolder.
type narratorIndex []Narrator

func (idx narratorIndex) String(i int) string {
	return strings.ToLower(idx[i].ID + " " + idx[i].Subfolder)
}

func (idx narratorIndex) Len() int { return len(idx) }

// FindNarrators ranks narrators whose id or audio folder fuzzily matches query,
// best match first.
func FindNarrators(query string) []Narrator {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return Narrators()
	}
	matches := fuzzy.FindFrom(query, narratorIndex(narrators))
	out := make([]Narrator, 0, len(matches))
	for _, m := range matches {
		out = append(out, narrators[m.Index])
	}
	return out
}
