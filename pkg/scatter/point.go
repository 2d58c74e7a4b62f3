package scatter

import (
	"cmp"
	"encoding/json"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Point is a single school in the plot. Empty strings and a nil Size mean
// the field is absent.
type Point struct {
	Label    string   `json:"label,omitempty"`
	BRIN     string   `json:"brin,omitempty"`
	Gemeente string   `json:"gemeente,omitempty"`
	Postcode string   `json:"postcode,omitempty"`
	Size     *float64 `json:"size,omitempty"`
}

// pointJSON accepts both the plot keys and the keys of the points export
// (name, municipality, pc4). Plot keys win when both are present.
type pointJSON struct {
	Label        string   `json:"label"`
	Name         string   `json:"name"`
	BRIN         string   `json:"brin"`
	Gemeente     string   `json:"gemeente"`
	Municipality string   `json:"municipality"`
	Postcode     string   `json:"postcode"`
	PC4          string   `json:"pc4"`
	Size         *float64 `json:"size"`
}

func (p *Point) UnmarshalJSON(data []byte) error {
	var w pointJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*p = Point{
		Label:    cmp.Or(w.Label, w.Name),
		BRIN:     w.BRIN,
		Gemeente: cmp.Or(w.Gemeente, w.Municipality),
		Postcode: cmp.Or(w.Postcode, w.PC4),
		Size:     w.Size,
	}
	return nil
}

// upper applies full Unicode upper-casing ("ß" becomes "SS").
// A Caser carries state, so each call gets its own.
func upper(s string) string {
	if s == "" {
		return ""
	}
	return cases.Upper(language.Und).String(s)
}

// stripSpace removes every Unicode whitespace rune from s.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
