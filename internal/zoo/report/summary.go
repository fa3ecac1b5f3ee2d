package report

import (
	"fmt"
	"strings"

	"github.com/zjrosen/zoo/internal/zoo/domain"
)

// SpeciesCount is one group of the summary breakdown.
type SpeciesCount struct {
	Species string
	Count   int
}

// Summary is the population total and its per-species breakdown.
// Groups appear in order of first appearance in the input.
type Summary struct {
	Total     int
	BySpecies []SpeciesCount
}

// Summarize groups animals by their exact species string.
func Summarize(animals []domain.Animal) Summary {
	index := make(map[string]int)
	groups := make([]SpeciesCount, 0)
	for _, a := range animals {
		species := a.Species()
		i, ok := index[species]
		if !ok {
			i = len(groups)
			index[species] = i
			groups = append(groups, SpeciesCount{Species: species})
		}
		groups[i].Count++
	}
	return Summary{Total: len(animals), BySpecies: groups}
}

// String renders the summary:
//
//	Total animals: 2
//	By species:
//	  Wolf: 1
//	  Parrot: 1
func (s Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total animals: %d\n", s.Total)
	b.WriteString("By species:\n")
	for _, g := range s.BySpecies {
		fmt.Fprintf(&b, "  %s: %d\n", g.Species, g.Count)
	}
	return b.String()
}

// BuildShortSummary renders Summarize(animals) as text.
func BuildShortSummary(animals []domain.Animal) string {
	return Summarize(animals).String()
}
