package scatter

import "strings"

// PointMatchesSearch reports whether p matches any of the terms. A term
// matches when it occurs in the label, BRIN or gemeente, or when its
// whitespace-free form occurs in the whitespace-free postcode. No terms
// means no filter, so every point matches.
func PointMatchesSearch(p Point, terms []string) bool {
	if len(terms) == 0 {
		return true
	}

	var (
		naam     = upper(p.Label)
		brin     = upper(p.BRIN)
		gemeente = upper(p.Gemeente)
		postcode = stripSpace(upper(p.Postcode))
	)

	for _, term := range terms {
		if strings.Contains(naam, term) ||
			strings.Contains(brin, term) ||
			strings.Contains(gemeente, term) ||
			strings.Contains(postcode, stripSpace(term)) {
			return true
		}
	}
	return false
}

// FilterPointsByGemeenteText keeps the points whose gemeente contains at
// least one of parts. With no parts the input slice is returned as is.
func FilterPointsByGemeenteText(points []Point, parts []string) []Point {
	if len(parts) == 0 {
		return points
	}

	out := make([]Point, 0, len(points))
	for _, p := range points {
		if p.Gemeente == "" {
			continue
		}
		g := upper(p.Gemeente)
		for _, q := range parts {
			if strings.Contains(g, q) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}
