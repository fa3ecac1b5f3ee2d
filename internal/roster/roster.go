// Package roster loads animals and employees from a YAML file:
//
//	animals:
//	  - kind: wolf
//	    name: Grey
//	employees:
//	  - kind: keeper
//	    name: Leo
package roster

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/zoo/internal/log"
	"github.com/zjrosen/zoo/internal/zoo/domain"
)

// Entry names one animal or employee by kind token.
type Entry struct {
	Kind string `yaml:"kind"`
	Name string `yaml:"name"`
}

// ParseEntry parses the "kind:name" form used by command-line flags.
func ParseEntry(s string) (Entry, error) {
	kind, name, ok := strings.Cut(s, ":")
	kind, name = strings.TrimSpace(kind), strings.TrimSpace(name)
	if !ok || kind == "" || name == "" {
		return Entry{}, domain.NewInvalidEntryError("entry", fmt.Sprintf("%q: want kind:name", s))
	}
	return Entry{Kind: kind, Name: name}, nil
}

// String formats the entry as "kind:name".
func (e Entry) String() string {
	return e.Kind + ":" + e.Name
}

// Roster is the decoded file.
type Roster struct {
	Animals   []Entry `yaml:"animals"`
	Employees []Entry `yaml:"employees"`
}

// Len returns the total number of entries.
func (r Roster) Len() int {
	return len(r.Animals) + len(r.Employees)
}

// Validate reports the first entry missing its kind or name.
func (r Roster) Validate() error {
	check := func(section string, entries []Entry) error {
		for i, e := range entries {
			if strings.TrimSpace(e.Kind) == "" {
				return domain.NewInvalidEntryError(fmt.Sprintf("%s[%d].kind", section, i), "is required")
			}
			if strings.TrimSpace(e.Name) == "" {
				return domain.NewInvalidEntryError(fmt.Sprintf("%s[%d].name", section, i), "is required")
			}
		}
		return nil
	}
	if err := check("animals", r.Animals); err != nil {
		return err
	}
	return check("employees", r.Employees)
}

// Decode reads a roster from r. Unknown keys are rejected.
func Decode(r io.Reader) (Roster, error) {
	var roster Roster
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&roster); err != nil && !errors.Is(err, io.EOF) {
		return Roster{}, err
	}
	if err := roster.Validate(); err != nil {
		return Roster{}, err
	}
	return roster, nil
}

// Load reads the roster at path from fsys.
func Load(fsys fs.FS, path string) (Roster, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Roster{}, fmt.Errorf("reading roster: %w", err)
	}
	roster, err := Decode(bytes.NewReader(data))
	if err != nil {
		return Roster{}, fmt.Errorf("roster %s: %w", path, err)
	}
	log.Debug(log.CatRoster, "roster loaded", "path", path,
		"animals", len(roster.Animals), "employees", len(roster.Employees))
	return roster, nil
}

// LoadFile reads the roster at an OS path.
func LoadFile(path string) (Roster, error) {
	f, err := os.Open(path) //nolint:gosec // G304: user-selected roster path
	if err != nil {
		return Roster{}, fmt.Errorf("reading roster: %w", err)
	}
	defer func() { _ = f.Close() }()

	roster, err := Decode(f)
	if err != nil {
		return Roster{}, fmt.Errorf("roster %s: %w", path, err)
	}
	log.Debug(log.CatRoster, "roster loaded", "path", path,
		"animals", len(roster.Animals), "employees", len(roster.Employees))
	return roster, nil
}
