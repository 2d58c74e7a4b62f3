// Package styles provides the lipgloss styles used to print highlights and
// color swatches on the terminal.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/alleschools/viewxy/pkg/scatter"
)

// HighlightOptions overrides the palette for matched text. Empty colors
// fall back to the palette.
type HighlightOptions struct {
	Foreground string
	Background string
	Bold       bool
}

// Styles is the set of styles derived from a palette.
type Styles struct {
	Match  lipgloss.Style
	Plain  lipgloss.Style
	Muted  lipgloss.Style
	Error  lipgloss.Style
	Header lipgloss.Style
}

// New builds the styles for palette p.
func New(p Palette, opts HighlightOptions) Styles {
	fg, bg := p.Background, p.Warning
	if opts.Foreground != "" {
		fg = lipgloss.Color(opts.Foreground)
	}
	if opts.Background != "" {
		bg = lipgloss.Color(opts.Background)
	}

	return Styles{
		Match: lipgloss.NewStyle().
			Foreground(fg).
			Background(bg).
			Bold(opts.Bold),
		Plain: lipgloss.NewStyle().
			Foreground(p.Foreground),
		Muted: lipgloss.NewStyle().
			Foreground(p.Muted),
		Error: lipgloss.NewStyle().
			Foreground(p.Error).
			Bold(true),
		Header: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),
	}
}

// Unstyled returns styles that print text unchanged.
func Unstyled() Styles {
	plain := lipgloss.NewStyle()
	return Styles{Match: plain, Plain: plain, Muted: plain, Error: plain, Header: plain}
}

// RenderSegments joins the segments, styling matched ones.
func (s Styles) RenderSegments(segs []scatter.Segment) string {
	var b strings.Builder
	for _, seg := range segs {
		if seg.Match {
			b.WriteString(s.Match.Render(seg.Text))
		} else {
			b.WriteString(s.Plain.Render(seg.Text))
		}
	}
	return b.String()
}

// Swatch renders a block of width cells filled with c.
func Swatch(c scatter.HSL, width int) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(Hex(c))).
		Render(strings.Repeat(" ", width))
}

// Hex converts a CSS-style HSL color to "#rrggbb".
func Hex(c scatter.HSL) string {
	return colorful.Hsl(c.Hue, c.Saturation/100, c.Lightness/100).Clamped().Hex()
}
