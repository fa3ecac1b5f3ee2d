package presentation

import (
	"fmt"
	"strings"

	"github.com/zjrosen/zoo/internal/zoo/domain"
	"github.com/zjrosen/zoo/internal/zoo/report"
	"github.com/zjrosen/zoo/internal/zoo/store"
)

// SectionKind names one part of a report run.
type SectionKind string

// Report sections, named after the console commands that print them.
const (
	SectionStat  SectionKind = "stat"
	SectionSched SectionKind = "sched"
	SectionEmps  SectionKind = "emps"
	SectionShow  SectionKind = "show"
)

// DefaultSections are rendered when none are requested.
func DefaultSections() []SectionKind {
	return []SectionKind{SectionStat, SectionSched, SectionEmps}
}

// ParseSection maps a section name, case-insensitively. "employees" is
// accepted for "emps".
func ParseSection(s string) (SectionKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stat":
		return SectionStat, nil
	case "sched":
		return SectionSched, nil
	case "emps", "employees":
		return SectionEmps, nil
	case "show":
		return SectionShow, nil
	default:
		return "", domain.NewInvalidEntryError("section",
			fmt.Sprintf("unknown section %q (available: stat, sched, emps, show)", s))
	}
}

// Section is one rendered part of a report. Only the field matching Kind is set.
type Section struct {
	Kind    SectionKind
	Summary report.Summary
	Day     report.Day
	Staff   report.Staff
	Detail  report.Detail
}

// StatSection wraps a population summary.
func StatSection(s report.Summary) Section { return Section{Kind: SectionStat, Summary: s} }

// SchedSection wraps a care day.
func SchedSection(d report.Day) Section { return Section{Kind: SectionSched, Day: d} }

// EmpsSection wraps a staff report.
func EmpsSection(s report.Staff) Section { return Section{Kind: SectionEmps, Staff: s} }

// ShowSection wraps a species detail.
func ShowSection(d report.Detail) Section { return Section{Kind: SectionShow, Detail: d} }

// Outcome is the result of seeding one entry: either a confirmation or
// the lookup failure of its kind token.
type Outcome struct {
	Added   *store.Event
	Skipped *domain.UnknownKindError
}

// Report is everything one report run prints: seeding outcomes in entry
// order, then the requested sections in order.
type Report struct {
	Outcomes []Outcome
	Sections []Section
}

// Added returns the confirmations among the outcomes.
func (r Report) Added() []store.Event {
	out := make([]store.Event, 0, len(r.Outcomes))
	for _, o := range r.Outcomes {
		if o.Added != nil {
			out = append(out, *o.Added)
		}
	}
	return out
}

// Skipped returns the lookup failures among the outcomes.
func (r Report) Skipped() []*domain.UnknownKindError {
	out := make([]*domain.UnknownKindError, 0)
	for _, o := range r.Outcomes {
		if o.Skipped != nil {
			out = append(out, o.Skipped)
		}
	}
	return out
}
