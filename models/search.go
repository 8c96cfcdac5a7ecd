package models

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// SearchMatch is one hit of Menu.Search. Exactly one of Product and Preconfigured is set.
type SearchMatch struct {
	Product       *Product
	Preconfigured *PreconfiguredProduct
	Field         string
	Score         int
}

func (m SearchMatch) Code() string {
	if m.Product != nil {
		return m.Product.Code
	}
	return m.Preconfigured.Code
}

func (m SearchMatch) Name() string {
	if m.Product != nil {
		return m.Product.Name
	}
	return m.Preconfigured.Name
}

// Similarity is a case-folded 0-100 score derived from the Levenshtein distance.
func Similarity(a, b string) int {
	a, b = strings.ToLower(a), strings.ToLower(b)
	longest := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > longest {
		longest = n
	}
	if longest == 0 {
		return 100
	}
	dist := levenshtein.ComputeDistance(a, b)
	return (100*(longest-dist) + longest/2) / longest
}

// Search returns products whose name, type or a description word scores strictly above
// threshold, then preconfigured products by name or description word. A product's name is
// tried first, then its type, then its description words; every matching description word
// adds another hit. Results follow catalog order.
func (m *Menu) Search(query string, threshold int) []SearchMatch {
	var out []SearchMatch
	for _, p := range m.Products() {
		if s := Similarity(query, p.Name); s > threshold {
			out = append(out, SearchMatch{Product: p, Field: "name", Score: s})
			continue
		}
		if s := Similarity(query, p.ProductType); s > threshold {
			out = append(out, SearchMatch{Product: p, Field: "type", Score: s})
			continue
		}
		for _, word := range strings.Split(p.Description, " ") {
			if s := Similarity(query, word); s > threshold {
				out = append(out, SearchMatch{Product: p, Field: "description", Score: s})
			}
		}
	}
	for _, p := range m.PreconfiguredProducts() {
		if s := Similarity(query, p.Name); s > threshold {
			out = append(out, SearchMatch{Preconfigured: p, Field: "name", Score: s})
			continue
		}
		for _, word := range strings.Split(p.Description, " ") {
			if s := Similarity(query, word); s > threshold {
				out = append(out, SearchMatch{Preconfigured: p, Field: "description", Score: s})
			}
		}
	}
	return out
}
