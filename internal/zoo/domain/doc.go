// Package domain defines the zoo entity model.
//
// The package has no infrastructure concerns; its only third-party import is
// uuid for entity identifiers.
// Types:
//   - Animal is an immutable (name, species) pair dispatched over a Species tag
//   - Employee is an immutable (name, role) pair carrying an explicit
//     Capabilities set drawn from Feed, Clean and Treat
//   - errors.go holds the semantic errors shared by the registry and the CLI
//
// # Variants
//
// Species and RoleKind are tagged variants. Each tag owns a fixed trait row
// (display string, message templates, capabilities) and behaviour is selected
// by a single switch on the tag rather than per-type methods.
//
// Entities are created through the kind registry in internal/zoo/registry and
// are owned by the store once added.
package domain
