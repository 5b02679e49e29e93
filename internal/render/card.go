// Package render produces the SVG language mix card.
//
// Output is a pure function of (entries, totalBytes, theme): no timestamps,
// no randomness, fixed float formatting. Identical inputs yield
// byte-identical documents.
package render

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/naka-gawa/lang-card/internal/domain"
)

// Theme holds every geometry and palette constant used by Card. It is
// passed in explicitly rather than kept as package state so rendering stays
// a pure function of its arguments.
type Theme struct {
	Width  int // card width in px
	Height int // card height in px; 0 derives it from the legend row count

	Title    string
	Subtitle string
	TitleX   int
	TitleY   int

	LineHeight int // vertical advance per legend row
	ListStartY int // baseline of the first legend row
	MinHeight  int // floor for the derived card height

	DotX   int // legend color dot center
	TextX  int // legend label left edge
	ValueX int // legend percentage right edge

	DonutOffsetX int // donut center, measured from the right card edge
	DonutRadius  int
	RingWidth    int

	LabelMaxLen       int // legend label truncation limit
	CenterLabelMaxLen int // donut-hole label truncation limit

	Palette    []string // arc/legend colors, cycled by rank position
	OtherColor string   // color of the synthetic fold bucket
}

// DefaultTheme returns the fixed card styling.
func DefaultTheme() Theme {
	return Theme{
		Width:             820,
		Title:             "Language Mix",
		Subtitle:          "Auto-updated daily",
		TitleX:            28,
		TitleY:            42,
		LineHeight:        22,
		ListStartY:        92,
		MinHeight:         230,
		DotX:              32,
		TextX:             48,
		ValueX:            320,
		DonutOffsetX:      170,
		DonutRadius:       78,
		RingWidth:         16,
		LabelMaxLen:       16,
		CenterLabelMaxLen: 14,
		Palette: []string{
			"#3b82f6",
			"#22c55e",
			"#f59e0b",
			"#f43f5e",
			"#8b5cf6",
			"#38bdf8",
			"#10b981",
			"#fb923c",
		},
		OtherColor: "#9ca3af",
	}
}

// Card renders the complete SVG document for the given ranked entries.
// A zero totalBytes or an empty entry list produces the explicit
// "No language data" card.
func Card(entries []domain.LanguageShare, totalBytes int64, theme Theme) string {
	height := theme.Height
	if height == 0 {
		listHeight := theme.ListStartY + len(entries)*theme.LineHeight
		height = max(theme.MinHeight, listHeight+24)
	}

	donutCX := theme.Width - theme.DonutOffsetX
	donutCY := height/2 + 4
	circumference := 2 * math.Pi * float64(theme.DonutRadius)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" role="img" aria-label="%s stats">`+"\n",
		theme.Width, height, theme.Width, height, escapeText(theme.Title))
	writeDefs(&buf)
	writeStyles(&buf)
	fmt.Fprintf(&buf, `<rect x="1" y="1" width="%d" height="%d" rx="16" fill="url(#bg)" stroke="#1f2937" filter="url(#shadow)"/>`+"\n",
		theme.Width-2, height-2)
	fmt.Fprintf(&buf, `<text x="%d" y="%d" class="title">%s</text>`+"\n", theme.TitleX, theme.TitleY, escapeText(theme.Title))
	fmt.Fprintf(&buf, `<text x="%d" y="%d" class="subtitle">%s</text>`+"\n", theme.TitleX, theme.TitleY+18, escapeText(theme.Subtitle))

	if len(entries) == 0 || totalBytes == 0 {
		fmt.Fprintf(&buf, `<text x="%d" y="%d" class="label muted">No language data</text>`+"\n", theme.TitleX, theme.TitleY+32)
		buf.WriteString("</svg>")
		return buf.String()
	}

	// Donut track, faint outer ring, legend separator.
	fmt.Fprintf(&buf, `<circle cx="%d" cy="%d" r="%d" fill="none" stroke="#1f2937" stroke-width="%d"/>`+"\n",
		donutCX, donutCY, theme.DonutRadius, theme.RingWidth)
	fmt.Fprintf(&buf, `<circle cx="%d" cy="%d" r="%d" fill="none" stroke="#0f172a" stroke-width="1" opacity="0.6"/>`+"\n",
		donutCX, donutCY, theme.DonutRadius+10)
	fmt.Fprintf(&buf, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#1f2937" stroke-width="1"/>`+"\n",
		theme.TitleX, theme.ListStartY-16, theme.Width-28, theme.ListStartY-16)

	// Arc segments tile the circle clockwise from 12 o'clock: each segment's
	// dash offset is the accumulated length of everything drawn before it.
	offset := 0.0
	for _, entry := range entries {
		if entry.Percent <= 0 {
			continue
		}
		length := circumference * entry.Percent / 100
		fmt.Fprintf(&buf, `<circle cx="%d" cy="%d" r="%d" fill="none" stroke="%s" stroke-width="%d" stroke-dasharray="%.2f %.2f" stroke-dashoffset="%.2f" transform="rotate(-90 %d %d)" stroke-linecap="round" filter="url(#softGlow)"/>`+"\n",
			donutCX, donutCY, theme.DonutRadius, entry.Color, theme.RingWidth,
			length, circumference-length, -offset, donutCX, donutCY)
		offset += length
	}

	for i, entry := range entries {
		y := theme.ListStartY + i*theme.LineHeight
		fmt.Fprintf(&buf, `<circle cx="%d" cy="%d" r="5" fill="%s"/>`+"\n", theme.DotX, y-4, entry.Color)
		fmt.Fprintf(&buf, `<text x="%d" y="%d" class="label">%s</text>`+"\n",
			theme.TextX, y, escapeText(truncateLabel(entry.Name, theme.LabelMaxLen)))
		fmt.Fprintf(&buf, `<text x="%d" y="%d" class="label muted" text-anchor="end">%s</text>`+"\n",
			theme.ValueX, y, formatPercent(entry.Percent))
	}

	top := entries[0]
	fmt.Fprintf(&buf, `<text x="%d" y="%d" class="value" text-anchor="middle">%s</text>`+"\n",
		donutCX, donutCY-4, formatPercent(top.Percent))
	fmt.Fprintf(&buf, `<text x="%d" y="%d" class="label muted" text-anchor="middle">%s</text>`+"\n",
		donutCX, donutCY+16, escapeText(truncateLabel(top.Name, theme.CenterLabelMaxLen)))

	buf.WriteString("</svg>")
	return buf.String()
}

func writeDefs(buf *bytes.Buffer) {
	buf.WriteString(`<defs>
  <linearGradient id="bg" x1="0" x2="0" y1="0" y2="1">
    <stop offset="0%" stop-color="#0b0f16"/>
    <stop offset="100%" stop-color="#111827"/>
  </linearGradient>
  <filter id="shadow" x="-10%" y="-10%" width="120%" height="120%">
    <feDropShadow dx="0" dy="8" stdDeviation="10" flood-color="#000000" flood-opacity="0.35"/>
  </filter>
  <filter id="softGlow" x="-20%" y="-20%" width="140%" height="140%">
    <feDropShadow dx="0" dy="0" stdDeviation="6" flood-color="#0ea5e9" flood-opacity="0.12"/>
  </filter>
</defs>
`)
}

func writeStyles(buf *bytes.Buffer) {
	buf.WriteString(`<style>
  .title { font: 600 18px "Source Sans 3", "Segoe UI", Tahoma, sans-serif; fill: #e2e8f0; }
  .subtitle { font: 500 12px "Source Sans 3", "Segoe UI", Tahoma, sans-serif; fill: #94a3b8; }
  .label { font: 500 13px "Source Sans 3", "Segoe UI", Tahoma, sans-serif; fill: #e5e7eb; }
  .value { font: 600 22px "Source Sans 3", "Segoe UI", Tahoma, sans-serif; fill: #f8fafc; }
  .muted { fill: #94a3b8; }
</style>
`)
}

func formatPercent(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}

// truncateLabel shortens a label to maxLen runes, replacing the tail with
// "..." when there is room for it.
func truncateLabel(value string, maxLen int) string {
	runes := []rune(value)
	if len(runes) <= maxLen {
		return value
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeText(value string) string {
	return textEscaper.Replace(value)
}
