// Package store holds the animals and employees of a zoo session.
//
// Both sequences keep insertion order and never shrink. Every query returns a
// copy so callers cannot reorder or overwrite the stored entries.
package store

import (
	"strings"

	"github.com/zjrosen/zoo/internal/log"
	"github.com/zjrosen/zoo/internal/pubsub"
	"github.com/zjrosen/zoo/internal/zoo/domain"
)

// Entity names carried in Event.Entity.
const (
	EntityAnimal   = "animal"
	EntityEmployee = "employee"
)

// Event is the confirmation published after an entry is added.
// Label is the species for animals and the role for employees.
type Event struct {
	Entity string
	ID     string
	Name   string
	Label  string
}

// Option configures a Zoo.
type Option func(*Zoo)

// WithPublisher routes add confirmations to p.
func WithPublisher(p pubsub.Publisher[Event]) Option {
	return func(z *Zoo) {
		if p != nil {
			z.publisher = p
		}
	}
}

// Zoo is the in-memory store. It is not safe for concurrent use.
type Zoo struct {
	animals   []domain.Animal
	employees []domain.Employee
	publisher pubsub.Publisher[Event]
}

// New creates an empty zoo.
func New(opts ...Option) *Zoo {
	z := &Zoo{publisher: pubsub.Discard[Event]()}
	for _, opt := range opts {
		opt(z)
	}
	return z
}

// AddAnimal appends a and publishes its confirmation.
func (z *Zoo) AddAnimal(a domain.Animal) {
	z.animals = append(z.animals, a)
	log.Debug(log.CatStore, "animal added", "name", a.Name(), "species", a.Species(), "total", len(z.animals))
	z.publisher.Publish(pubsub.CreatedEvent, Event{
		Entity: EntityAnimal,
		ID:     a.ID(),
		Name:   a.Name(),
		Label:  a.Species(),
	})
}

// AddEmployee appends e and publishes its confirmation.
func (z *Zoo) AddEmployee(e domain.Employee) {
	z.employees = append(z.employees, e)
	log.Debug(log.CatStore, "employee added", "name", e.Name(), "role", e.Role(), "total", len(z.employees))
	z.publisher.Publish(pubsub.CreatedEvent, Event{
		Entity: EntityEmployee,
		ID:     e.ID(),
		Name:   e.Name(),
		Label:  e.Role(),
	})
}

// Animals returns a copy of every animal in insertion order.
func (z *Zoo) Animals() []domain.Animal {
	out := make([]domain.Animal, len(z.animals))
	copy(out, z.animals)
	return out
}

// Employees returns a copy of every employee in insertion order.
func (z *Zoo) Employees() []domain.Employee {
	out := make([]domain.Employee, len(z.employees))
	copy(out, z.employees)
	return out
}

// AnimalsBySpecies returns the animals whose species equals species,
// ignoring case. The result is empty, never nil, when nothing matches.
func (z *Zoo) AnimalsBySpecies(species string) []domain.Animal {
	out := make([]domain.Animal, 0)
	for _, a := range z.animals {
		if strings.EqualFold(a.Species(), species) {
			out = append(out, a)
		}
	}
	return out
}

// Counts returns the number of animals and employees.
func (z *Zoo) Counts() (animals, employees int) {
	return len(z.animals), len(z.employees)
}
