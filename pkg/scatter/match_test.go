package scatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointMatchesSearch_NoTerms(t *testing.T) {
	p := Point{Label: "X"}
	assert.True(t, PointMatchesSearch(p, nil))
	assert.True(t, PointMatchesSearch(p, []string{}))
	assert.True(t, PointMatchesSearch(Point{}, nil))
}

func TestPointMatchesSearch(t *testing.T) {
	tests := []struct {
		name  string
		point Point
		terms []string
		want  bool
	}{
		{
			name:  "label hit",
			point: Point{Label: "Amsterdam School"},
			terms: []string{"AMS"},
			want:  true,
		},
		{
			name:  "label miss",
			point: Point{Label: "Amsterdam School"},
			terms: []string{"OTHER"},
			want:  false,
		},
		{
			name:  "brin",
			point: Point{BRIN: "02QZ00"},
			terms: []string{"02QZ"},
			want:  true,
		},
		{
			name:  "gemeente",
			point: Point{Gemeente: "Amsterdam"},
			terms: []string{"AMSTERDAM"},
			want:  true,
		},
		{
			name:  "postcode prefix",
			point: Point{Postcode: "1234 AB"},
			terms: []string{"1234"},
			want:  true,
		},
		{
			name:  "postcode ignores whitespace in term",
			point: Point{Postcode: "1234AB"},
			terms: []string{"1234 AB"},
			want:  true,
		},
		{
			name:  "postcode ignores whitespace in value",
			point: Point{Postcode: "1234\tab"},
			terms: []string{"34AB"},
			want:  true,
		},
		{
			name:  "whitespace term does not match label without it",
			point: Point{Label: "1234AB College"},
			terms: []string{"1234 AB"},
			want:  false,
		},
		{
			name:  "any term is enough",
			point: Point{Label: "Zandvoort Lyceum"},
			terms: []string{"NOPE", "ZAND"},
			want:  true,
		},
		{
			name:  "empty point with terms",
			point: Point{},
			terms: []string{"A"},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PointMatchesSearch(tt.point, tt.terms))
		})
	}
}

func TestFilterPointsByGemeenteText_NoParts(t *testing.T) {
	points := []Point{{Gemeente: "Amsterdam"}, {Gemeente: "Rotterdam"}}

	assert.Equal(t, points, FilterPointsByGemeenteText(points, nil))
	assert.Equal(t, points, FilterPointsByGemeenteText(points, []string{}))

	out := FilterPointsByGemeenteText(points, nil)
	require.Len(t, out, 2)
	assert.Same(t, &points[0], &out[0], "expected the input slice back")
}

func TestFilterPointsByGemeenteText(t *testing.T) {
	points := []Point{
		{Gemeente: "Amsterdam"},
		{Gemeente: "'s-Gravenhage"},
		{Gemeente: "Rotterdam"},
		{Label: "no gemeente"},
	}

	out := FilterPointsByGemeenteText(points, []string{"GRA"})
	require.Len(t, out, 1)
	assert.Equal(t, "'s-Gravenhage", out[0].Gemeente)

	out = FilterPointsByGemeenteText(points, []string{"DAM"})
	require.Len(t, out, 2)
	assert.Equal(t, "Amsterdam", out[0].Gemeente)
	assert.Equal(t, "Rotterdam", out[1].Gemeente)

	assert.Empty(t, FilterPointsByGemeenteText(points, []string{"UTRECHT"}))
}

func TestFilterPointsByGemeenteText_NoWhitespaceNormalization(t *testing.T) {
	points := []Point{{Gemeente: "Den Haag"}}

	assert.Len(t, FilterPointsByGemeenteText(points, []string{"DEN HAAG"}), 1)
	assert.Empty(t, FilterPointsByGemeenteText(points, []string{"DENHAAG"}))
}
