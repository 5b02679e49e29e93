// Package domain contains the core data structures and domain logic for the application.
package domain

// Repository is the subset of a GitHub repository relevant to language
// aggregation: the exclusion flags and the URL of its language breakdown.
type Repository struct {
	Name         string `json:"name"`
	Fork         bool   `json:"fork"`
	Archived     bool   `json:"archived"`
	Disabled     bool   `json:"disabled"`
	LanguagesURL string `json:"languages_url"`
}

// Countable reports whether the repository should contribute to the
// account-wide language totals. Forks, archived and disabled repositories
// are excluded, as are repositories without a language breakdown URL.
func (r Repository) Countable() bool {
	return !r.Fork && !r.Archived && !r.Disabled && r.LanguagesURL != ""
}

// LanguageTotals maps a language name, exactly as returned by the API, to
// the byte count accumulated across all counted repositories.
type LanguageTotals map[string]int64

// Add accumulates size bytes for the given language.
func (t LanguageTotals) Add(language string, size int64) {
	t[language] += size
}

// TotalBytes returns the sum of all accumulated byte counts.
func (t LanguageTotals) TotalBytes() int64 {
	var total int64
	for _, size := range t {
		total += size
	}
	return total
}

// LanguageShare is one ranked legend/chart entry: a language (or the
// synthetic "Other" bucket), its share of the account total, and the color
// assigned to it.
type LanguageShare struct {
	Name    string  `json:"name"`
	Bytes   int64   `json:"bytes"`
	Percent float64 `json:"percent"`
	Color   string  `json:"color"`
}
