package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/zjrosen/zoo/internal/zoo/domain"
)

// Default schedule start times and per-animal steps.
const (
	FeedingStart  = Clock(9 * 60)
	FeedingStep   = 30 * time.Minute
	MedicalStart  = Clock(11 * 60)
	MedicalStep   = 45 * time.Minute
	CleaningStart = Clock(14 * 60)
	CleaningStep  = 30 * time.Minute
)

// ScheduleKind identifies one of the daily care schedules.
type ScheduleKind int

const (
	Feeding ScheduleKind = iota
	Medical
	Cleaning
)

// ScheduleKinds lists the schedules in the order a care day presents them.
func ScheduleKinds() []ScheduleKind {
	return []ScheduleKind{Feeding, Medical, Cleaning}
}

// String returns the schedule key used in configuration and JSON output.
func (k ScheduleKind) String() string {
	switch k {
	case Feeding:
		return "feeding"
	case Medical:
		return "medical"
	case Cleaning:
		return "cleaning"
	default:
		return "unknown"
	}
}

// Title returns the heading line of the schedule.
func (k ScheduleKind) Title() string {
	switch k {
	case Feeding:
		return "Feeding schedule for today:"
	case Medical:
		return "Medical examination schedule for today:"
	case Cleaning:
		return "Enclosure cleaning schedule for today:"
	default:
		return "Schedule for today:"
	}
}

// DefaultPlan returns the built-in start and step of the schedule.
func (k ScheduleKind) DefaultPlan() Plan {
	switch k {
	case Feeding:
		return Plan{Start: FeedingStart, Step: FeedingStep}
	case Medical:
		return Plan{Start: MedicalStart, Step: MedicalStep}
	case Cleaning:
		return Plan{Start: CleaningStart, Step: CleaningStep}
	default:
		return Plan{}
	}
}

// Plan is the slot arithmetic of one schedule: slot k starts at Start + k*Step.
type Plan struct {
	Start Clock
	Step  time.Duration
}

// SlotAt returns the start time of the k-th slot (0-based).
func (p Plan) SlotAt(k int) Clock {
	return p.Start.Add(time.Duration(k) * p.Step)
}

// Slot assigns one animal a start time.
type Slot struct {
	Time   Clock
	Animal domain.Animal
}

// String formats the slot as "HH:MM - name (species)".
func (s Slot) String() string {
	return fmt.Sprintf("%s - %s (%s)", s.Time, s.Animal.Name(), s.Animal.Species())
}

// Schedule is one rendered care schedule.
type Schedule struct {
	Kind  ScheduleKind
	Slots []Slot
}

// Title returns the heading line of the schedule.
func (s Schedule) Title() string { return s.Kind.Title() }

// String renders the title and one line per slot, each newline-terminated.
func (s Schedule) String() string {
	var b strings.Builder
	b.WriteString(s.Kind.Title())
	b.WriteString("\n")
	for _, slot := range s.Slots {
		b.WriteString(slot.String())
		b.WriteString("\n")
	}
	return b.String()
}

// Plans holds the plan of every schedule kind.
type Plans struct {
	Feeding  Plan
	Medical  Plan
	Cleaning Plan
}

// DefaultPlans returns the built-in plans.
func DefaultPlans() Plans {
	return Plans{
		Feeding:  Feeding.DefaultPlan(),
		Medical:  Medical.DefaultPlan(),
		Cleaning: Cleaning.DefaultPlan(),
	}
}

// For returns the plan of kind k.
func (p Plans) For(k ScheduleKind) Plan {
	switch k {
	case Feeding:
		return p.Feeding
	case Medical:
		return p.Medical
	case Cleaning:
		return p.Cleaning
	default:
		return Plan{}
	}
}

// Schedule assigns every animal, in order, a slot of the kind's plan.
func (p Plans) Schedule(k ScheduleKind, animals []domain.Animal) Schedule {
	plan := p.For(k)
	slots := make([]Slot, len(animals))
	for i, a := range animals {
		slots[i] = Slot{Time: plan.SlotAt(i), Animal: a}
	}
	return Schedule{Kind: k, Slots: slots}
}

// Day bundles the three schedules of one care day.
type Day struct {
	Feeding  Schedule
	Medical  Schedule
	Cleaning Schedule
}

// Schedules returns the schedules in feeding, medical, cleaning order.
func (d Day) Schedules() []Schedule {
	return []Schedule{d.Feeding, d.Medical, d.Cleaning}
}

// String renders each schedule followed by a blank line.
func (d Day) String() string {
	var b strings.Builder
	for _, s := range d.Schedules() {
		b.WriteString(s.String())
		b.WriteString("\n")
	}
	return b.String()
}

// CareDay builds all three schedules with the receiver's plans.
func (p Plans) CareDay(animals []domain.Animal) Day {
	return Day{
		Feeding:  p.Schedule(Feeding, animals),
		Medical:  p.Schedule(Medical, animals),
		Cleaning: p.Schedule(Cleaning, animals),
	}
}

// FeedingSchedule starts at 09:00 and advances 30 minutes per animal.
func FeedingSchedule(animals []domain.Animal) Schedule {
	return DefaultPlans().Schedule(Feeding, animals)
}

// MedicalSchedule starts at 11:00 and advances 45 minutes per animal.
func MedicalSchedule(animals []domain.Animal) Schedule {
	return DefaultPlans().Schedule(Medical, animals)
}

// CleaningSchedule starts at 14:00 and advances 30 minutes per animal.
func CleaningSchedule(animals []domain.Animal) Schedule {
	return DefaultPlans().Schedule(Cleaning, animals)
}

// CareDay builds the three schedules with the default plans.
func CareDay(animals []domain.Animal) Day {
	return DefaultPlans().CareDay(animals)
}

// BuildFeedingSchedule renders FeedingSchedule as text.
func BuildFeedingSchedule(animals []domain.Animal) string {
	return FeedingSchedule(animals).String()
}

// BuildMedicalSchedule renders MedicalSchedule as text.
func BuildMedicalSchedule(animals []domain.Animal) string {
	return MedicalSchedule(animals).String()
}

// BuildCleaningSchedule renders CleaningSchedule as text.
func BuildCleaningSchedule(animals []domain.Animal) string {
	return CleaningSchedule(animals).String()
}
