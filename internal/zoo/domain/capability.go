package domain

import "strings"

// Capability is a single care ability an employee may support.
type Capability uint8

const (
	CapFeed Capability = 1 << iota
	CapClean
	CapTreat
)

// AllCapabilities lists capabilities in responsibility order.
func AllCapabilities() []Capability {
	return []Capability{CapFeed, CapClean, CapTreat}
}

// String returns the capability marker name.
func (c Capability) String() string {
	switch c {
	case CapFeed:
		return "Feedable"
	case CapClean:
		return "Cleanable"
	case CapTreat:
		return "Treatable"
	default:
		return "Unknown"
	}
}

// Verb returns the imperative verb for the capability ("feed", "clean", "treat").
func (c Capability) Verb() string {
	switch c {
	case CapFeed:
		return "feed"
	case CapClean:
		return "clean"
	case CapTreat:
		return "treat"
	default:
		return ""
	}
}

// Responsibility returns the fixed responsibility label shown in staff reports.
func (c Capability) Responsibility() string {
	switch c {
	case CapFeed:
		return "Feeding animals"
	case CapClean:
		return "Enclosure cleaning"
	case CapTreat:
		return "Medical examination and treatment"
	default:
		return ""
	}
}

// ParseCapability maps a verb or marker name to a Capability, case-insensitively.
func ParseCapability(s string) (Capability, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "feed", "feedable", "feeding":
		return CapFeed, true
	case "clean", "cleanable", "cleaning":
		return CapClean, true
	case "treat", "treatable", "treatment":
		return CapTreat, true
	default:
		return 0, false
	}
}

// Capabilities is a bitmask of Capability values.
type Capabilities uint8

// CapabilitiesOf builds a set from the given capabilities.
func CapabilitiesOf(caps ...Capability) Capabilities {
	var set Capabilities
	for _, c := range caps {
		set |= Capabilities(c)
	}
	return set
}

// Has reports whether c is in the set.
func (s Capabilities) Has(c Capability) bool {
	return c != 0 && s&Capabilities(c) == Capabilities(c)
}

// List returns the members of the set in responsibility order.
func (s Capabilities) List() []Capability {
	out := make([]Capability, 0, 3)
	for _, c := range AllCapabilities() {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// Responsibilities returns the responsibility labels of the set in the fixed
// order Feed, Clean, Treat.
func (s Capabilities) Responsibilities() []string {
	caps := s.List()
	out := make([]string, len(caps))
	for i, c := range caps {
		out[i] = c.Responsibility()
	}
	return out
}
