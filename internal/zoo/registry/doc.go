// Package registry maps user-typed kind tokens to entity constructors.
//
// A Registry[T] holds the kinds of one entity domain ("animal", "employee").
// Kinds self-register at package init from the domain variant tables, which
// is the Go counterpart of discovering every concrete kind. When nothing has
// registered, the registry answers from a static known-kinds fallback list.
//
// Lookup is case-insensitive. A token is first normalised through the alias
// table ("keeper" -> ZooKeeper), then tried as given, then with its first
// letter capitalised, then by case folding. Creation failures of any sort are
// reported as not found so an interactive caller never crashes.
//
// The process-wide catalogs are reached through Animals and Employees, or the
// package-level helpers CreateAnimal, CreateEmployee, ListAnimalKinds and
// ListEmployeeKinds.
//
// Registries are not safe for concurrent mutation; populate them during init.
package registry
