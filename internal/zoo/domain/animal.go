package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Species tags the concrete animal variant.
type Species int

const (
	SpeciesUnknown Species = iota
	SpeciesWolf
	SpeciesParrot
	SpeciesSnake
	SpeciesMonkey
)

// AllSpecies lists every concrete animal variant in declaration order.
func AllSpecies() []Species {
	return []Species{SpeciesWolf, SpeciesParrot, SpeciesSnake, SpeciesMonkey}
}

// String returns the species display name, e.g. "Wolf".
func (s Species) String() string {
	switch s {
	case SpeciesWolf:
		return "Wolf"
	case SpeciesParrot:
		return "Parrot"
	case SpeciesSnake:
		return "Snake"
	case SpeciesMonkey:
		return "Monkey"
	default:
		return "Unknown"
	}
}

// KindName returns the registry kind name of the variant, e.g. "wolf".
func (s Species) KindName() string {
	if !s.Valid() {
		return ""
	}
	return strings.ToLower(s.String())
}

// Valid reports whether s is one of the concrete variants.
func (s Species) Valid() bool {
	return s > SpeciesUnknown && s <= SpeciesMonkey
}

// soundTemplate and activityTemplate take the animal name as their only verb.
func (s Species) soundTemplate() string {
	switch s {
	case SpeciesWolf:
		return "%s growls."
	case SpeciesParrot:
		return "%s says: \"Hello!\""
	case SpeciesSnake:
		return "%s hisses."
	case SpeciesMonkey:
		return "%s screeches."
	default:
		return "%s is silent."
	}
}

func (s Species) activityTemplate() string {
	switch s {
	case SpeciesWolf:
		return "%s strolls lazily around the enclosure watching the visitors."
	case SpeciesParrot:
		return "%s hops from perch to perch."
	case SpeciesSnake:
		return "%s basks under the heat lamp."
	case SpeciesMonkey:
		return "%s swings from branch to branch."
	default:
		return "%s rests."
	}
}

// Animal is an immutable zoo animal.
type Animal struct {
	id      string
	name    string
	species Species
}

// NewAnimal creates an animal of the given species.
// Returns ErrInvalidEntry when the species is not a concrete variant.
func NewAnimal(species Species, name string) (Animal, error) {
	if !species.Valid() {
		return Animal{}, NewInvalidEntryError("species", fmt.Sprintf("unsupported species %d", int(species)))
	}
	return Animal{
		id:      uuid.NewString(),
		name:    name,
		species: species,
	}, nil
}

// ID returns the unique identifier assigned at creation.
func (a Animal) ID() string { return a.id }

// Name returns the animal's display name.
func (a Animal) Name() string { return a.name }

// Species returns the species display string, e.g. "Wolf".
func (a Animal) Species() string { return a.species.String() }

// Kind returns the species tag.
func (a Animal) Kind() Species { return a.species }

// Sound describes the sound the animal makes.
func (a Animal) Sound() string {
	return fmt.Sprintf(a.species.soundTemplate(), a.name)
}

// DailyActivity describes the animal's characteristic daily activity.
func (a Animal) DailyActivity() string {
	return fmt.Sprintf(a.species.activityTemplate(), a.name)
}

// String renders "Name (Species)".
func (a Animal) String() string {
	return fmt.Sprintf("%s (%s)", a.name, a.species)
}
