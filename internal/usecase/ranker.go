package usecase

import (
	"sort"

	"github.com/naka-gawa/lang-card/internal/domain"
)

// OtherLanguage names the synthetic bucket holding every language outside
// the kept top-N.
const OtherLanguage = "Other"

// RankLanguages orders languages by accumulated byte count descending,
// keeps the first topN, and folds the remainder into a trailing "Other"
// entry. Each kept entry carries its percentage of the account total and a
// color cycled from the palette by rank position. A zero total returns an
// empty slice, which the renderer treats as the no-data state.
//
// Equal byte counts order by name ascending so repeated runs over the same
// data produce identical output.
func RankLanguages(totals domain.LanguageTotals, topN int, palette []string, otherColor string) ([]domain.LanguageShare, int64) {
	totalBytes := totals.TotalBytes()
	if totalBytes == 0 {
		return nil, 0
	}

	sorted := make([]domain.LanguageShare, 0, len(totals))
	for name, size := range totals {
		sorted = append(sorted, domain.LanguageShare{Name: name, Bytes: size})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Bytes != sorted[j].Bytes {
			return sorted[i].Bytes > sorted[j].Bytes
		}
		return sorted[i].Name < sorted[j].Name
	})

	if topN < 0 {
		topN = 0
	}
	if topN > len(sorted) {
		topN = len(sorted)
	}

	var otherBytes int64
	for _, entry := range sorted[topN:] {
		otherBytes += entry.Bytes
	}

	ranked := make([]domain.LanguageShare, 0, topN+1)
	for i, entry := range sorted[:topN] {
		entry.Percent = float64(entry.Bytes) / float64(totalBytes) * 100
		entry.Color = palette[i%len(palette)]
		ranked = append(ranked, entry)
	}

	// The fold bucket always trails the kept entries, even when it would
	// outrank some of them by byte count.
	if otherBytes > 0 {
		ranked = append(ranked, domain.LanguageShare{
			Name:    OtherLanguage,
			Bytes:   otherBytes,
			Percent: float64(otherBytes) / float64(totalBytes) * 100,
			Color:   otherColor,
		})
	}

	return ranked, totalBytes
}
