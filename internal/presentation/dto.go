package presentation

import (
	"github.com/zjrosen/zoo/internal/zoo/domain"
	"github.com/zjrosen/zoo/internal/zoo/report"
	"github.com/zjrosen/zoo/internal/zoo/store"
)

// KindDTO describes one registered kind.
type KindDTO struct {
	Kind  string `json:"kind"`
	Label string `json:"label"`
	// Responsibilities is set for employee kinds only.
	Responsibilities []string `json:"responsibilities,omitempty"`
}

// KindsDTO lists the animal and employee kinds.
type KindsDTO struct {
	Animals   []KindDTO         `json:"animals"`
	Employees []KindDTO         `json:"employees"`
	Aliases   map[string]string `json:"aliases,omitempty"`
}

// AddedDTO is one add confirmation.
type AddedDTO struct {
	Entity string `json:"entity"`
	ID     string `json:"id"`
	Name   string `json:"name"`
	Label  string `json:"label"`
}

// SkippedDTO is an entry whose kind token was not recognised.
type SkippedDTO struct {
	Domain    string   `json:"domain"`
	Token     string   `json:"token"`
	Available []string `json:"available"`
}

// SpeciesCountDTO is one summary group.
type SpeciesCountDTO struct {
	Species string `json:"species"`
	Count   int    `json:"count"`
}

// SummaryDTO is the population summary.
type SummaryDTO struct {
	Total     int               `json:"total"`
	BySpecies []SpeciesCountDTO `json:"by_species"`
}

// SlotDTO is one schedule line.
type SlotDTO struct {
	Time    string `json:"time"`
	Name    string `json:"name"`
	Species string `json:"species"`
}

// ScheduleDTO is one care schedule.
type ScheduleDTO struct {
	Kind  string    `json:"kind"`
	Title string    `json:"title"`
	Slots []SlotDTO `json:"slots"`
}

// MemberDTO is one employee of the staff report.
type MemberDTO struct {
	Name             string   `json:"name"`
	Role             string   `json:"role"`
	Responsibilities []string `json:"responsibilities"`
}

// StaffDTO is the staff report.
type StaffDTO struct {
	Total     int         `json:"total"`
	Employees []MemberDTO `json:"employees"`
}

// AnimalDetailDTO is one animal of a species detail.
type AnimalDetailDTO struct {
	Name     string `json:"name"`
	Species  string `json:"species"`
	Sound    string `json:"sound"`
	Activity string `json:"activity"`
}

// DetailDTO is a species detail.
type DetailDTO struct {
	Species string            `json:"species"`
	Count   int               `json:"count"`
	Animals []AnimalDetailDTO `json:"animals"`
}

// CareDTO is the result of one care operation.
type CareDTO struct {
	Employee   string `json:"employee"`
	Role       string `json:"role"`
	Animal     string `json:"animal"`
	Species    string `json:"species"`
	Capability string `json:"capability"`
	Message    string `json:"message"`
}

// FromCare describes employee performing c on animal.
func FromCare(e domain.Employee, c domain.Capability, a domain.Animal, message string) CareDTO {
	return CareDTO{
		Employee:   e.Name(),
		Role:       e.Role(),
		Animal:     a.Name(),
		Species:    a.Species(),
		Capability: c.Verb(),
		Message:    message,
	}
}

// ReportDTO is the JSON form of a report run.
type ReportDTO struct {
	Added     []AddedDTO    `json:"added"`
	Skipped   []SkippedDTO  `json:"skipped"`
	Summary   *SummaryDTO   `json:"summary,omitempty"`
	Schedules []ScheduleDTO `json:"schedules,omitempty"`
	Staff     *StaffDTO     `json:"staff,omitempty"`
	Details   []DetailDTO   `json:"details,omitempty"`
}

// FromEvent converts a store confirmation.
func FromEvent(e store.Event) AddedDTO {
	return AddedDTO{Entity: e.Entity, ID: e.ID, Name: e.Name, Label: e.Label}
}

// FromUnknownKind converts a lookup failure.
func FromUnknownKind(err *domain.UnknownKindError) SkippedDTO {
	available := make([]string, len(err.Available))
	copy(available, err.Available)
	return SkippedDTO{Domain: err.Domain, Token: err.Token, Available: available}
}

// FromSummary converts a population summary.
func FromSummary(s report.Summary) SummaryDTO {
	groups := make([]SpeciesCountDTO, len(s.BySpecies))
	for i, g := range s.BySpecies {
		groups[i] = SpeciesCountDTO{Species: g.Species, Count: g.Count}
	}
	return SummaryDTO{Total: s.Total, BySpecies: groups}
}

// FromSchedule converts one care schedule.
func FromSchedule(s report.Schedule) ScheduleDTO {
	slots := make([]SlotDTO, len(s.Slots))
	for i, slot := range s.Slots {
		slots[i] = SlotDTO{
			Time:    slot.Time.String(),
			Name:    slot.Animal.Name(),
			Species: slot.Animal.Species(),
		}
	}
	return ScheduleDTO{Kind: s.Kind.String(), Title: s.Title(), Slots: slots}
}

// FromDay converts a care day to its three schedules.
func FromDay(d report.Day) []ScheduleDTO {
	schedules := d.Schedules()
	dtos := make([]ScheduleDTO, len(schedules))
	for i, s := range schedules {
		dtos[i] = FromSchedule(s)
	}
	return dtos
}

// FromStaff converts the staff report.
func FromStaff(s report.Staff) StaffDTO {
	members := make([]MemberDTO, len(s.Members))
	for i, m := range s.Members {
		responsibilities := make([]string, len(m.Responsibilities))
		copy(responsibilities, m.Responsibilities)
		members[i] = MemberDTO{Name: m.Name, Role: m.Role, Responsibilities: responsibilities}
	}
	return StaffDTO{Total: s.Total, Employees: members}
}

// FromDetail converts a species detail.
func FromDetail(d report.Detail) DetailDTO {
	animals := make([]AnimalDetailDTO, len(d.Animals))
	for i, a := range d.Animals {
		animals[i] = AnimalDetailDTO{Name: a.Name, Species: a.Species, Sound: a.Sound, Activity: a.Activity}
	}
	return DetailDTO{Species: d.Species, Count: d.Count(), Animals: animals}
}

// FromReport converts a whole report run.
func FromReport(r Report) ReportDTO {
	added, skipped := r.Added(), r.Skipped()
	dto := ReportDTO{
		Added:   make([]AddedDTO, len(added)),
		Skipped: make([]SkippedDTO, len(skipped)),
	}
	for i, e := range added {
		dto.Added[i] = FromEvent(e)
	}
	for i, err := range skipped {
		dto.Skipped[i] = FromUnknownKind(err)
	}
	for _, section := range r.Sections {
		switch section.Kind {
		case SectionStat:
			summary := FromSummary(section.Summary)
			dto.Summary = &summary
		case SectionSched:
			dto.Schedules = append(dto.Schedules, FromDay(section.Day)...)
		case SectionEmps:
			staff := FromStaff(section.Staff)
			dto.Staff = &staff
		case SectionShow:
			dto.Details = append(dto.Details, FromDetail(section.Detail))
		}
	}
	return dto
}
