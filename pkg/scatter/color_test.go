package scatter

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	hslaPattern = regexp.MustCompile(`^hsla\([\d.]+,\s*[\d.]+%,\s*[\d.]+%,\s*0\.9\)$`)
	hslPattern  = regexp.MustCompile(`^hsl\([\d.]+,\s*[\d.]+%,\s*[\d.]+%\)$`)
)

func TestGemeenteToColor(t *testing.T) {
	names := []string{"Amsterdam", "'s-Gravenhage", "X", "", "Súdwest-Fryslân"}

	for _, name := range names {
		c := GemeenteToColor(name)
		assert.Regexp(t, hslaPattern, c, "gemeente %q", name)
		assert.Equal(t, c, GemeenteToColor(name), "gemeente %q", name)
	}
}

func TestGemeenteToBorderColor(t *testing.T) {
	for _, name := range []string{"Amsterdam", "Rotterdam", ""} {
		c := GemeenteToBorderColor(name)
		assert.Regexp(t, hslPattern, c, "gemeente %q", name)
		assert.Equal(t, c, GemeenteToBorderColor(name), "gemeente %q", name)
	}
}

func TestGemeenteFill_Components(t *testing.T) {
	// HashString("A", 0..2) = 65, 96, 127
	c := GemeenteFill("A")
	assert.InDelta(t, 298.02, c.Hue, 1e-6)
	assert.Equal(t, 86.0, c.Saturation)
	assert.Equal(t, 72.0, c.Lightness)

	b := GemeenteBorder("A")
	assert.Equal(t, c.Hue, b.Hue)
	assert.Equal(t, 85.0, b.Saturation)
	assert.Equal(t, 50.0, b.Lightness)
}

func TestGemeenteFill_Ranges(t *testing.T) {
	for _, name := range []string{"Amsterdam", "Utrecht", "Groningen", "Maastricht", "Zwolle", "Ede"} {
		c := GemeenteFill(name)
		assert.GreaterOrEqual(t, c.Hue, 0.0)
		assert.Less(t, c.Hue, 360.0)
		assert.GreaterOrEqual(t, c.Saturation, 60.0)
		assert.Less(t, c.Saturation, 95.0)
		assert.GreaterOrEqual(t, c.Lightness, 35.0)
		assert.Less(t, c.Lightness, 80.0)

		b := GemeenteBorder(name)
		assert.LessOrEqual(t, b.Saturation, 85.0)
		assert.GreaterOrEqual(t, b.Lightness, 18.0)
		assert.Less(t, b.Lightness, c.Lightness)
	}
}

func TestGemeenteToColor_Format(t *testing.T) {
	// HashString("", 0..2) = 0, 1, 2
	assert.Equal(t, "hsla(0, 61%, 37%, 0.9)", GemeenteToColor(""))
	assert.Equal(t, "hsl(0, 71%, 18%)", GemeenteToBorderColor(""))
}
