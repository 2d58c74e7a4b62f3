package scatter

import "strings"

// ParseSearchTerms splits the raw search box value into uppercase terms.
// Pieces are comma separated; blank pieces are dropped.
func ParseSearchTerms(raw string) []string {
	return splitTerms(raw)
}

// ParseGemeenteFilter splits the raw gemeente filter value into uppercase
// terms. It behaves exactly like ParseSearchTerms.
func ParseGemeenteFilter(raw string) []string {
	return splitTerms(raw)
}

func splitTerms(raw string) []string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return []string{}
	}

	pieces := strings.Split(s, ",")
	terms := make([]string, 0, len(pieces))
	for _, p := range pieces {
		t := upper(strings.TrimSpace(p))
		if t == "" {
			continue
		}
		terms = append(terms, t)
	}
	return terms
}
