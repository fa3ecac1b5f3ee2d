package roster

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/zoo/internal/zoo/domain"
)

const sample = `animals:
  - kind: wolf
    name: Grey
  - kind: Parrot
    name: Kiwi
employees:
  - kind: keeper
    name: Leo
`

func TestDecode(t *testing.T) {
	r, err := Decode(strings.NewReader(sample))
	require.NoError(t, err)
	require.Equal(t, []Entry{{Kind: "wolf", Name: "Grey"}, {Kind: "Parrot", Name: "Kiwi"}}, r.Animals)
	require.Equal(t, []Entry{{Kind: "keeper", Name: "Leo"}}, r.Employees)
	require.Equal(t, 3, r.Len())
}

func TestDecode_Empty(t *testing.T) {
	r, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	require.Zero(t, r.Len())
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"unknown key", "animals: []\nvisitors: []\n", "visitors"},
		{"missing name", "animals:\n  - kind: wolf\n", "animals[0].name"},
		{"missing kind", "employees:\n  - name: Leo\n", "employees[0].kind"},
		{"not yaml", "animals: [", "yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			require.ErrorContains(t, err, tt.wantErr)
		})
	}

	_, err := Decode(strings.NewReader("animals:\n  - kind: wolf\n"))
	require.True(t, domain.IsInvalidEntry(err))
}

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{"zoo/roster.yaml": {Data: []byte(sample)}}

	r, err := Load(fsys, "zoo/roster.yaml")
	require.NoError(t, err)
	require.Len(t, r.Animals, 2)

	_, err = Load(fsys, "missing.yaml")
	require.ErrorContains(t, err, "reading roster")

	fsys["bad.yaml"] = &fstest.MapFile{Data: []byte("animals:\n  - kind: wolf\n")}
	_, err = Load(fsys, "bad.yaml")
	require.ErrorContains(t, err, "roster bad.yaml")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	r, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, r.Employees, 1)

	_, err = LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestParseEntry(t *testing.T) {
	e, err := ParseEntry("wolf:Grey")
	require.NoError(t, err)
	require.Equal(t, Entry{Kind: "wolf", Name: "Grey"}, e)
	require.Equal(t, "wolf:Grey", e.String())

	e, err = ParseEntry(" vet : Dr. Anna: DVM ")
	require.NoError(t, err)
	require.Equal(t, Entry{Kind: "vet", Name: "Dr. Anna: DVM"}, e)

	for _, bad := range []string{"", "wolf", "wolf:", ":Grey", " : "} {
		_, err := ParseEntry(bad)
		require.True(t, domain.IsInvalidEntry(err), bad)
	}
}
