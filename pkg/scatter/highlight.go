package scatter

import (
	"encoding/json"
	"slices"
)

// Range is a half-open [Start, End) span of runes in the upper-cased
// label.
type Range struct {
	Start int
	End   int
}

// MarshalJSON encodes the range as a two element array.
func (r Range) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{r.Start, r.End})
}

// GetNameHighlights returns the spans of label hit by any of the terms,
// sorted and merged so no two spans touch or overlap.
//
// Each term is scanned for every occurrence, including overlapping ones:
// after a hit at i the search resumes at i+1, so "AA" finds three hits in
// "AAAA" before merging.
func GetNameHighlights(label string, terms []string) []Range {
	if label == "" || len(terms) == 0 {
		return []Range{}
	}

	hay := []rune(upper(label))

	var ranges []Range
	for _, term := range terms {
		needle := []rune(term)
		if len(needle) == 0 {
			continue
		}
		for from := 0; ; {
			i := indexRunes(hay, needle, from)
			if i < 0 {
				break
			}
			ranges = append(ranges, Range{Start: i, End: i + len(needle)})
			from = i + 1
		}
	}

	slices.SortStableFunc(ranges, func(a, b Range) int {
		return a.Start - b.Start
	})

	merged := make([]Range, 0, len(ranges))
	for _, r := range ranges {
		if n := len(merged); n > 0 && r.Start <= merged[n-1].End {
			merged[n-1].End = max(merged[n-1].End, r.End)
			continue
		}
		merged = append(merged, r)
	}
	return merged
}

// indexRunes returns the first index >= from at which needle occurs in
// hay, or -1.
func indexRunes(hay, needle []rune, from int) int {
	for i := from; i+len(needle) <= len(hay); i++ {
		if slices.Equal(hay[i:i+len(needle)], needle) {
			return i
		}
	}
	return -1
}

// Segment is a run of label text that is either entirely inside or
// entirely outside a highlight.
type Segment struct {
	Text  string `json:"text"`
	Match bool   `json:"match"`
}

// HighlightSegments cuts label into alternating plain and matched
// segments using GetNameHighlights. Offsets refer to the upper-cased
// label; when upper-casing changes the rune count ("ß" to "SS") the
// segments are cut from the upper-cased text instead of the original.
func HighlightSegments(label string, terms []string) []Segment {
	if label == "" {
		return []Segment{}
	}

	text := []rune(label)
	if up := []rune(upper(label)); len(up) != len(text) {
		text = up
	}

	var (
		segs []Segment
		pos  int
	)
	for _, r := range GetNameHighlights(label, terms) {
		if r.Start > pos {
			segs = append(segs, Segment{Text: string(text[pos:r.Start])})
		}
		segs = append(segs, Segment{Text: string(text[r.Start:r.End]), Match: true})
		pos = r.End
	}
	if pos < len(text) {
		segs = append(segs, Segment{Text: string(text[pos:])})
	}
	return segs
}
