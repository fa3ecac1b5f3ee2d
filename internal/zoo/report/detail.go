package report

import (
	"fmt"
	"strings"

	"github.com/zjrosen/zoo/internal/zoo/domain"
)

// AnimalDetail describes one animal with its sound and daily activity.
type AnimalDetail struct {
	Name     string
	Species  string
	Sound    string
	Activity string
}

// Detail lists the animals of one species.
type Detail struct {
	Species string
	Animals []AnimalDetail
}

// Count returns the number of listed animals.
func (d Detail) Count() int { return len(d.Animals) }

// SpeciesDetail describes animals, typically the result of a species query.
// species is the name as the user typed it.
func SpeciesDetail(species string, animals []domain.Animal) Detail {
	details := make([]AnimalDetail, len(animals))
	for i, a := range animals {
		details[i] = AnimalDetail{
			Name:     a.Name(),
			Species:  a.Species(),
			Sound:    a.Sound(),
			Activity: a.DailyActivity(),
		}
	}
	return Detail{Species: species, Animals: details}
}

// String renders the detail, or a not-found line when the list is empty.
func (d Detail) String() string {
	if len(d.Animals) == 0 {
		return fmt.Sprintf("No animals of species '%s' found at the zoo.\n", d.Species)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "=== Animals of species: %s ===\n", d.Species)
	fmt.Fprintf(&b, "Count: %d\n", len(d.Animals))
	b.WriteString("\nList:\n")
	for _, a := range d.Animals {
		fmt.Fprintf(&b, "  - %s (%s)\n", a.Name, a.Species)
		fmt.Fprintf(&b, "    Sound: %s\n", a.Sound)
		fmt.Fprintf(&b, "    Activity: %s\n", a.Activity)
	}
	return b.String()
}
