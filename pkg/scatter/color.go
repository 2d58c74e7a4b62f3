package scatter

import (
	"math"
	"strconv"
)

// goldenAngle spreads the hues of consecutive gemeenten around the wheel
// without remembering which hues were handed out already.
const goldenAngle = 137.508

// Seeds for the three hashes behind a gemeente color.
const (
	hueSeed        int32 = 0
	saturationSeed int32 = 1
	lightnessSeed  int32 = 2
)

// HSL is a color in CSS hsl() terms: hue in degrees, saturation and
// lightness in percent.
type HSL struct {
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Lightness  float64 `json:"lightness"`
}

// GemeenteFill returns the marker fill color for a gemeente.
func GemeenteFill(gemeente string) HSL {
	var (
		h  = HashString(gemeente, hueSeed)
		hS = HashString(gemeente, saturationSeed)
		hL = HashString(gemeente, lightnessSeed)
	)
	return HSL{
		Hue:        math.Mod(float64(h)*goldenAngle, 360),
		Saturation: float64(60 + hS%35),
		Lightness:  float64(35 + hL%45),
	}
}

// GemeenteBorder returns the marker border color for a gemeente: the fill
// hue, a little more saturated and clearly darker.
func GemeenteBorder(gemeente string) HSL {
	fill := GemeenteFill(gemeente)
	return HSL{
		Hue:        fill.Hue,
		Saturation: math.Min(85, fill.Saturation+10),
		Lightness:  math.Max(18, fill.Lightness-22),
	}
}

// GemeenteToColor returns the fill color as "hsla(h, s%, l%, 0.9)".
func GemeenteToColor(gemeente string) string {
	c := GemeenteFill(gemeente)
	return "hsla(" + formatNum(c.Hue) + ", " + formatNum(c.Saturation) + "%, " + formatNum(c.Lightness) + "%, 0.9)"
}

// GemeenteToBorderColor returns the border color as "hsl(h, s%, l%)".
func GemeenteToBorderColor(gemeente string) string {
	c := GemeenteBorder(gemeente)
	return "hsl(" + formatNum(c.Hue) + ", " + formatNum(c.Saturation) + "%, " + formatNum(c.Lightness) + "%)"
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
