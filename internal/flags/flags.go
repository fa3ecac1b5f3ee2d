// Package flags provides feature flags read from the "flags" config section.
// Flags are read-only after initialization; unknown flags are disabled.
package flags

import (
	"maps"
	"slices"

	"github.com/zjrosen/zoo/internal/log"
)

const (
	// FlagStrictKinds makes an unknown kind token fail the command instead of
	// being reported and skipped.
	FlagStrictKinds = "strict-kinds"

	// FlagRosterAutosave records a --roster path in the config file so later
	// runs load it without the flag.
	FlagRosterAutosave = "roster-autosave"

	// FlagStyledOutput enables lipgloss styling of text reports.
	FlagStyledOutput = "styled-output"
)

// defaults holds the value of each known flag when the config omits it.
var defaults = map[string]bool{
	FlagStrictKinds:    false,
	FlagRosterAutosave: false,
	FlagStyledOutput:   true,
}

// Known returns the sorted names of the flags zoo understands.
func Known() []string {
	return slices.Sorted(maps.Keys(defaults))
}

// Registry holds feature flag state loaded from configuration.
type Registry struct {
	flags map[string]bool
}

// New creates a Registry from the config map. Known flags missing from
// flags take their default; nil yields the defaults alone.
func New(flags map[string]bool) *Registry {
	merged := maps.Clone(defaults)
	for name, value := range flags {
		if _, known := defaults[name]; !known {
			log.Warn(log.CatConfig, "Unknown feature flag in config", "flag", name)
		}
		merged[name] = value
	}
	r := &Registry{flags: merged}
	log.Debug(log.CatConfig, "Feature flags initialized", "count", len(merged), "flags", r.All())
	return r
}

// Enabled reports whether the named flag is on. Unknown flags and a nil
// registry report false.
func (r *Registry) Enabled(name string) bool {
	if r == nil || r.flags == nil {
		return false
	}
	value, exists := r.flags[name]
	if !exists {
		log.Debug(log.CatConfig, "Unknown flag accessed", "flag", name, "result", false)
		return false
	}
	return value
}

// All returns a copy of all flags. Returns an empty map if the registry is nil.
func (r *Registry) All() map[string]bool {
	if r == nil || r.flags == nil {
		return make(map[string]bool)
	}
	return maps.Clone(r.flags)
}
