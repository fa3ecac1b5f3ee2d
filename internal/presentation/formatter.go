package presentation

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/indent"

	"github.com/zjrosen/zoo/internal/zoo/domain"
	"github.com/zjrosen/zoo/internal/zoo/store"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// EmptyZooMessage is printed for stat and sched when there are no animals.
const EmptyZooMessage = "There are no animals at the zoo yet."

// Formatter writes kinds, reports and care results as text or JSON.
type Formatter struct {
	writer io.Writer
	format string
	styles Styles
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithFormat selects "text" (default) or "json".
func WithFormat(format string) Option {
	return func(f *Formatter) {
		if format != "" {
			f.format = format
		}
	}
}

// WithStyles sets text styling. Ignored for JSON.
func WithStyles(s Styles) Option {
	return func(f *Formatter) {
		f.styles = s
	}
}

// NewFormatter creates a formatter writing plain text to writer.
func NewFormatter(writer io.Writer, opts ...Option) *Formatter {
	f := &Formatter{writer: writer, format: FormatText}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// JSON reports whether the formatter emits JSON.
func (f *Formatter) JSON() bool {
	return f.format == FormatJSON
}

func (f *Formatter) encode(v any) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func (f *Formatter) print(s string) error {
	_, err := io.WriteString(f.writer, s)
	return err
}

// FormatKinds lists the available kinds as two aligned tables.
func (f *Formatter) FormatKinds(kinds KindsDTO) error {
	if f.JSON() {
		return f.encode(kinds)
	}

	var b strings.Builder
	b.WriteString(f.styles.Title("Animal kinds:") + "\n")
	b.WriteString(table(kindRows(kinds.Animals, false)))
	b.WriteString("\n")
	b.WriteString(f.styles.Title("Employee kinds:") + "\n")
	b.WriteString(table(kindRows(kinds.Employees, true)))

	if len(kinds.Aliases) > 0 {
		aliases := make([]string, 0, len(kinds.Aliases))
		for alias := range kinds.Aliases {
			aliases = append(aliases, alias)
		}
		sort.Strings(aliases)
		pairs := make([]string, len(aliases))
		for i, alias := range aliases {
			pairs[i] = alias + " -> " + kinds.Aliases[alias]
		}
		b.WriteString("\n" + f.styles.Muted("Employee aliases: "+strings.Join(pairs, ", ")) + "\n")
	}
	return f.print(b.String())
}

func kindRows(kinds []KindDTO, withDuties bool) [][]string {
	rows := make([][]string, len(kinds))
	for i, k := range kinds {
		row := []string{k.Kind, k.Label}
		if withDuties && len(k.Responsibilities) > 0 {
			row = append(row, strings.Join(k.Responsibilities, ", "))
		}
		rows[i] = row
	}
	return rows
}

// table pads every column but the last to its widest cell and indents the
// block by two spaces.
func table(rows [][]string) string {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	var b strings.Builder
	for _, row := range rows {
		for i, cell := range row {
			if i == len(row)-1 {
				b.WriteString(cell)
				break
			}
			b.WriteString(runewidth.FillRight(cell, widths[i]))
			b.WriteString("  ")
		}
		b.WriteString("\n")
	}
	return indent.String(b.String(), 2)
}

// Confirmation renders a store event as "✓ Added animal: Grey (Wolf)".
func (f *Formatter) Confirmation(e store.Event) string {
	return fmt.Sprintf("%s Added %s: %s (%s)", f.styles.Success("✓"), e.Entity, e.Name, e.Label)
}

// Rejection renders an unknown kind as two lines: the token, then the
// kinds that would have been accepted.
func (f *Formatter) Rejection(err *domain.UnknownKindError) string {
	return f.styles.Failure(fmt.Sprintf("Unknown %s type: %s", err.Domain, err.Token)) + "\n" +
		"Available types: " + strings.Join(err.Available, ", ")
}

// FormatReport writes a report run.
func (f *Formatter) FormatReport(r Report) error {
	if f.JSON() {
		return f.encode(FromReport(r))
	}

	var b strings.Builder
	for _, o := range r.Outcomes {
		switch {
		case o.Added != nil:
			b.WriteString(f.Confirmation(*o.Added) + "\n")
		case o.Skipped != nil:
			b.WriteString(f.Rejection(o.Skipped) + "\n")
		}
	}
	for _, section := range r.Sections {
		b.WriteString(f.section(section))
	}
	return f.print(b.String())
}

func (f *Formatter) section(s Section) string {
	switch s.Kind {
	case SectionStat:
		if s.Summary.Total == 0 {
			return EmptyZooMessage + "\n"
		}
		return "\n" + f.styles.Heading("=== Zoo statistics ===") + "\n\n" + s.Summary.String() + "\n"
	case SectionSched:
		if len(s.Day.Feeding.Slots) == 0 {
			return EmptyZooMessage + "\n"
		}
		var b strings.Builder
		b.WriteString("\n" + f.styles.Heading("=== Animal care schedule for today ===") + "\n\n")
		for _, schedule := range s.Day.Schedules() {
			b.WriteString(f.styleFirstLine(schedule.String(), f.styles.Title))
			b.WriteString("\n")
		}
		return b.String()
	case SectionEmps:
		return "\n" + f.styleFirstLine(s.Staff.String(), f.styles.Heading) + "\n"
	case SectionShow:
		if s.Detail.Count() == 0 {
			return f.styles.Muted(strings.TrimSuffix(s.Detail.String(), "\n")) + "\n"
		}
		return "\n" + f.styleFirstLine(s.Detail.String(), f.styles.Heading) + "\n"
	default:
		return ""
	}
}

func (f *Formatter) styleFirstLine(text string, style func(string) string) string {
	first, rest, _ := strings.Cut(text, "\n")
	return style(first) + "\n" + rest
}

// FormatCare writes the result of a care operation.
func (f *Formatter) FormatCare(result CareDTO) error {
	if f.JSON() {
		return f.encode(result)
	}
	return f.print(result.Message + "\n")
}

// FormatError writes err as a styled line, or as {"error": ...} in JSON.
func (f *Formatter) FormatError(err error) error {
	if f.JSON() {
		return f.encode(map[string]string{"error": err.Error()})
	}
	return f.print(f.styles.Failure(err.Error()) + "\n")
}
