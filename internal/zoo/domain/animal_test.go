package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewAnimal_Variants(t *testing.T) {
	tests := []struct {
		species  Species
		display  string
		kind     string
		sound    string
		activity string
	}{
		{SpeciesWolf, "Wolf", "wolf", "Grey growls.", "Grey strolls lazily around the enclosure watching the visitors."},
		{SpeciesParrot, "Parrot", "parrot", `Grey says: "Hello!"`, "Grey hops from perch to perch."},
		{SpeciesSnake, "Snake", "snake", "Grey hisses.", "Grey basks under the heat lamp."},
		{SpeciesMonkey, "Monkey", "monkey", "Grey screeches.", "Grey swings from branch to branch."},
	}

	for _, tt := range tests {
		t.Run(tt.display, func(t *testing.T) {
			a, err := NewAnimal(tt.species, "Grey")
			require.NoError(t, err)
			require.Equal(t, "Grey", a.Name())
			require.Equal(t, tt.display, a.Species())
			require.Equal(t, tt.kind, a.Kind().KindName())
			require.Equal(t, tt.sound, a.Sound())
			require.Equal(t, tt.activity, a.DailyActivity())
			require.Equal(t, "Grey ("+tt.display+")", a.String())
			require.NotEmpty(t, a.ID())
		})
	}
}

func TestNewAnimal_RejectsUnknownSpecies(t *testing.T) {
	_, err := NewAnimal(SpeciesUnknown, "Nobody")
	require.Error(t, err)
	require.True(t, IsInvalidEntry(err))

	_, err = NewAnimal(Species(99), "Nobody")
	require.True(t, IsInvalidEntry(err))
}

func TestNewAnimal_DistinctIDsForDuplicates(t *testing.T) {
	a, err := NewAnimal(SpeciesWolf, "Grey")
	require.NoError(t, err)
	b, err := NewAnimal(SpeciesWolf, "Grey")
	require.NoError(t, err)

	require.Equal(t, a.Name(), b.Name())
	require.Equal(t, a.Species(), b.Species())
	require.NotEqual(t, a.ID(), b.ID())
}

func TestAllSpecies_AreValid(t *testing.T) {
	require.Len(t, AllSpecies(), 4)
	for _, s := range AllSpecies() {
		require.True(t, s.Valid(), s.String())
	}
	require.False(t, SpeciesUnknown.Valid())
	require.Equal(t, "", SpeciesUnknown.KindName())
}
