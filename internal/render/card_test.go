package render

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naka-gawa/lang-card/internal/domain"
)

func twoLanguageEntries() []domain.LanguageShare {
	return []domain.LanguageShare{
		{Name: "Go", Bytes: 700, Percent: 70.0, Color: "#3b82f6"},
		{Name: "Python", Bytes: 300, Percent: 30.0, Color: "#22c55e"},
	}
}

func TestCard_EmptyState(t *testing.T) {
	svg := Card(nil, 0, DefaultTheme())

	assert.Contains(t, svg, ">No language data</text>")
	assert.NotContains(t, svg, "stroke-dasharray")
	assert.NotContains(t, svg, `r="5"`) // no legend dots
	assert.True(t, strings.HasPrefix(svg, "<svg "))
	assert.True(t, strings.HasSuffix(svg, "</svg>"))
}

func TestCard_ArcsAndLegend(t *testing.T) {
	theme := DefaultTheme()
	svg := Card(twoLanguageEntries(), 1000, theme)

	// Two legend rows: one color dot per entry, with name and percentage.
	assert.Equal(t, 2, strings.Count(svg, `r="5"`))
	assert.Contains(t, svg, ">Go</text>")
	assert.Contains(t, svg, ">Python</text>")
	assert.Contains(t, svg, ">70.0%</text>")
	assert.Contains(t, svg, ">30.0%</text>")

	// Two arc segments tiling the circle: 0.7 and 0.3 of the circumference,
	// the second offset by the first segment's length.
	circumference := 2 * math.Pi * float64(theme.DonutRadius)
	offset := 0.0
	first := fmt.Sprintf(`stroke-dasharray="%.2f %.2f" stroke-dashoffset="%.2f"`,
		circumference*0.7, circumference*0.3, -offset)
	offset += circumference * 0.7
	second := fmt.Sprintf(`stroke-dasharray="%.2f %.2f" stroke-dashoffset="%.2f"`,
		circumference*0.3, circumference*0.7, -offset)

	assert.Equal(t, 2, strings.Count(svg, "stroke-dasharray"))
	assert.Contains(t, svg, first)
	assert.Contains(t, svg, second)
}

func TestCard_SkipsNonPositiveSegments(t *testing.T) {
	entries := append(twoLanguageEntries(), domain.LanguageShare{
		Name: "Empty", Bytes: 0, Percent: 0, Color: "#ffffff",
	})
	svg := Card(entries, 1000, DefaultTheme())

	// The zero-percent entry still gets a legend row but no arc.
	assert.Equal(t, 3, strings.Count(svg, `r="5"`))
	assert.Equal(t, 2, strings.Count(svg, "stroke-dasharray"))
}

func TestCard_CenterOverlayShowsTopEntry(t *testing.T) {
	svg := Card(twoLanguageEntries(), 1000, DefaultTheme())

	require.Contains(t, svg, `text-anchor="middle"`)
	assert.Contains(t, svg, `class="value" text-anchor="middle">70.0%</text>`)
	assert.Contains(t, svg, `class="label muted" text-anchor="middle">Go</text>`)
}

func TestCard_Deterministic(t *testing.T) {
	entries := twoLanguageEntries()
	first := Card(entries, 1000, DefaultTheme())
	second := Card(entries, 1000, DefaultTheme())
	assert.Equal(t, first, second)
}

func TestCard_AutoHeight(t *testing.T) {
	theme := DefaultTheme()

	// Two rows stay above the minimum height.
	svg := Card(twoLanguageEntries(), 1000, theme)
	assert.Contains(t, svg, fmt.Sprintf(`height="%d"`, theme.MinHeight))

	// Nine rows push past it: listStartY + rows*lineHeight + 24.
	entries := make([]domain.LanguageShare, 0, 9)
	for i := 0; i < 9; i++ {
		entries = append(entries, domain.LanguageShare{
			Name: fmt.Sprintf("lang-%d", i), Bytes: 100, Percent: 100.0 / 9, Color: "#3b82f6",
		})
	}
	svg = Card(entries, 900, theme)
	expected := theme.ListStartY + 9*theme.LineHeight + 24
	assert.Contains(t, svg, fmt.Sprintf(`height="%d"`, expected))
}

func TestCard_FixedHeightOverridesAuto(t *testing.T) {
	theme := DefaultTheme()
	theme.Height = 400
	svg := Card(twoLanguageEntries(), 1000, theme)
	assert.Contains(t, svg, `height="400"`)
}

func TestCard_TruncatesLongNames(t *testing.T) {
	entries := []domain.LanguageShare{
		{Name: "SuperDuperLongLanguageName", Bytes: 1000, Percent: 100.0, Color: "#3b82f6"},
	}
	svg := Card(entries, 1000, DefaultTheme())

	assert.Contains(t, svg, ">SuperDuperLon...</text>") // legend, 16 max
	assert.Contains(t, svg, ">SuperDuperL...</text>")   // donut center, 14 max
	assert.NotContains(t, svg, ">SuperDuperLongLanguageName</text>")
}

func TestCard_EscapesMarkup(t *testing.T) {
	entries := []domain.LanguageShare{
		{Name: "C&C<html>", Bytes: 1000, Percent: 100.0, Color: "#3b82f6"},
	}
	svg := Card(entries, 1000, DefaultTheme())

	assert.Contains(t, svg, "C&amp;C&lt;html&gt;")
	assert.NotContains(t, svg, ">C&C<html></text>")
}

func TestTruncateLabel(t *testing.T) {
	assert.Equal(t, "Go", truncateLabel("Go", 16))
	assert.Equal(t, "exactly-sixteen!", truncateLabel("exactly-sixteen!", 16))
	assert.Equal(t, "abcdefghijklm...", truncateLabel("abcdefghijklmnopq", 16))
	assert.Equal(t, "ab", truncateLabel("abcdef", 2))
}
