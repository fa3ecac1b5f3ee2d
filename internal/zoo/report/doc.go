// Package report renders population, care schedule and staff reports from
// store contents. Every function is pure: the same animals and employees
// always produce the same report.
package report
