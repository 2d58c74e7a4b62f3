package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alleschools/viewxy/pkg/scatter"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	assert.Contains(t, names, "tokyo-night")
	assert.IsIncreasing(t, names)

	for _, name := range names {
		_, ok := GetPalette(name)
		assert.True(t, ok, "theme %q", name)
	}

	_, ok := GetPalette("missing")
	assert.False(t, ok)
}

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		c    scatter.HSL
		want string
	}{
		{name: "red", c: scatter.HSL{Hue: 0, Saturation: 100, Lightness: 50}, want: "#ff0000"},
		{name: "white", c: scatter.HSL{Hue: 0, Saturation: 0, Lightness: 100}, want: "#ffffff"},
		{name: "black", c: scatter.HSL{Hue: 200, Saturation: 50, Lightness: 0}, want: "#000000"},
		{name: "blue", c: scatter.HSL{Hue: 240, Saturation: 100, Lightness: 50}, want: "#0000ff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Hex(tt.c))
		})
	}
}

func TestRenderSegments_PlainProfile(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	palette, ok := GetPalette("tokyo-night")
	require.True(t, ok)

	s := New(palette, HighlightOptions{Bold: true})
	out := s.RenderSegments(scatter.HighlightSegments("Amsterdam School", []string{"AM"}))

	assert.Contains(t, out, "Am")
	assert.Contains(t, out, " School")
}

func TestSwatch_Width(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	out := Swatch(scatter.GemeenteFill("Amsterdam"), 3)
	assert.Equal(t, 3, lipgloss.Width(out))
}

func TestUnstyled(t *testing.T) {
	st := Unstyled()
	for _, style := range []lipgloss.Style{st.Match, st.Plain, st.Muted, st.Error, st.Header} {
		assert.Equal(t, "text", style.Render("text"))
	}
}
