package domain

// Progress is one human-readable progress report from a bulk load.
// Done/Total count completed steps when known (Total == 0 otherwise).
type Progress struct {
	Message string
	Done    int
	Total   int
}

// Percent returns completion in the range 0..100, or -1 when unknown.
func (p Progress) Percent() int {
	if p.Total <= 0 {
		return -1
	}
	if p.Done >= p.Total {
		return 100
	}
	return p.Done * 100 / p.Total
}

// ProgressFunc receives progress reports. A nil ProgressFunc is valid.
type ProgressFunc func(Progress)

// Report calls f when it is set.
func (f ProgressFunc) Report(p Progress) {
	if f != nil {
		f(p)
	}
}

// VerseResult is the outcome of fetching and storing one verse blob.
type VerseResult struct {
	Key   AudioKey
	Bytes int
	Err   error
}

// AudioSummary summarizes a narrator download. A run succeeds even when
// individual verses failed; Failures lists them.
type AudioSummary struct {
	RunID     string     `json:"runId" yaml:"run_id"`
	Narrator  string     `json:"narrator" yaml:"narrator"`
	Surahs    int        `json:"surahs" yaml:"surahs"`
	Attempted int        `json:"attempted" yaml:"attempted"`
	Stored    int        `json:"stored" yaml:"stored"`
	Failed    int        `json:"failed" yaml:"failed"`
	Failures  []AudioKey `json:"failures,omitempty" yaml:"failures,omitempty"`
}

// Add folds one verse result into the summary.
func (s *AudioSummary) Add(r VerseResult) {
	s.Attempted++
	if r.Err != nil {
		s.Failed++
		s.Failures = append(s.Failures, r.Key)
		return
	}
	s.Stored++
}

// CacheStatus is the download state of every content type.
type CacheStatus struct {
	Scripture  bool            `json:"scripture" yaml:"scripture"`
	Commentary bool            `json:"commentary" yaml:"commentary"`
	Edition    string          `json:"edition,omitempty" yaml:"edition,omitempty"`
	Audio      map[string]bool `json:"audio" yaml:"audio"`
	Schema     int             `json:"schemaVersion" yaml:"schema_version"`
	Available  bool            `json:"storeAvailable" yaml:"store_available"`
}
