package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// RoleKind tags the concrete employee variant.
type RoleKind int

const (
	RoleUnknown RoleKind = iota
	RoleZooKeeper
	RoleVet
)

// AllRoles lists every concrete employee variant in declaration order.
func AllRoles() []RoleKind {
	return []RoleKind{RoleZooKeeper, RoleVet}
}

// String returns the role display name.
func (r RoleKind) String() string {
	switch r {
	case RoleZooKeeper:
		return "Zoo Keeper"
	case RoleVet:
		return "Veterinarian"
	default:
		return "Unknown"
	}
}

// KindName returns the registry kind name of the variant ("zookeeper", "vet").
func (r RoleKind) KindName() string {
	switch r {
	case RoleZooKeeper:
		return "zookeeper"
	case RoleVet:
		return "vet"
	default:
		return ""
	}
}

// Valid reports whether r is one of the concrete variants.
func (r RoleKind) Valid() bool {
	return r > RoleUnknown && r <= RoleVet
}

// Capabilities returns the fixed capability set of the variant.
func (r RoleKind) Capabilities() Capabilities {
	switch r {
	case RoleZooKeeper:
		return CapabilitiesOf(CapFeed, CapClean)
	case RoleVet:
		return CapabilitiesOf(CapTreat)
	default:
		return 0
	}
}

// Employee is an immutable zoo staff member.
type Employee struct {
	id   string
	name string
	role RoleKind
}

// NewEmployee creates an employee of the given role.
// Returns ErrInvalidEntry when the role is not a concrete variant.
func NewEmployee(role RoleKind, name string) (Employee, error) {
	if !role.Valid() {
		return Employee{}, NewInvalidEntryError("role", fmt.Sprintf("unsupported role %d", int(role)))
	}
	return Employee{
		id:   uuid.NewString(),
		name: name,
		role: role,
	}, nil
}

// ID returns the unique identifier assigned at creation.
func (e Employee) ID() string { return e.id }

// Name returns the employee's display name.
func (e Employee) Name() string { return e.name }

// Role returns the role display string, e.g. "Veterinarian".
func (e Employee) Role() string { return e.role.String() }

// Kind returns the role tag.
func (e Employee) Kind() RoleKind { return e.role }

// Capabilities returns the set of care abilities the employee supports.
func (e Employee) Capabilities() Capabilities { return e.role.Capabilities() }

// Can reports whether the employee supports c.
func (e Employee) Can(c Capability) bool { return e.Capabilities().Has(c) }

// Responsibilities returns the employee's responsibility labels in fixed order.
func (e Employee) Responsibilities() []string {
	return e.Capabilities().Responsibilities()
}

// Perform carries out capability c on the animal and describes what happened.
// The animal is not modified. Returns a *CapabilityError when the employee
// lacks c.
func (e Employee) Perform(c Capability, a Animal) (string, error) {
	if !e.Can(c) {
		return "", &CapabilityError{Employee: e.name, Role: e.Role(), Capability: c}
	}
	switch c {
	case CapFeed:
		return fmt.Sprintf("%s feeds %s (%s).", e.name, a.Name(), a.Species()), nil
	case CapClean:
		return fmt.Sprintf("%s cleans the enclosure of %s (%s).", e.name, a.Name(), a.Species()), nil
	case CapTreat:
		return fmt.Sprintf("%s examines and treats %s (%s).", e.name, a.Name(), a.Species()), nil
	default:
		return "", &CapabilityError{Employee: e.name, Role: e.Role(), Capability: c}
	}
}

// Feed feeds the animal.
func (e Employee) Feed(a Animal) (string, error) { return e.Perform(CapFeed, a) }

// Clean cleans the animal's enclosure.
func (e Employee) Clean(a Animal) (string, error) { return e.Perform(CapClean, a) }

// Treat examines and treats the animal.
func (e Employee) Treat(a Animal) (string, error) { return e.Perform(CapTreat, a) }

// String renders "Name (Role)".
func (e Employee) String() string {
	return fmt.Sprintf("%s (%s)", e.name, e.role)
}
