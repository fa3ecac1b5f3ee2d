package registry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestListKinds(t *testing.T) {
	require.Equal(t, []string{"monkey", "parrot", "snake", "wolf"}, ListAnimalKinds())
	require.Equal(t, []string{"vet", "zookeeper"}, ListEmployeeKinds())
}

func TestCreateAnimal_AllCasings(t *testing.T) {
	tests := []struct {
		token   string
		species string
	}{
		{"wolf", "Wolf"},
		{"Wolf", "Wolf"},
		{"WOLF", "Wolf"},
		{"parrot", "Parrot"},
		{"sNaKe", "Snake"},
		{"MONKEY", "Monkey"},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			a, ok := CreateAnimal(tt.token, "Grey")
			require.True(t, ok)
			require.Equal(t, tt.species, a.Species())
			require.Equal(t, "Grey", a.Name())
		})
	}
}

func TestCreateEmployee_Aliases(t *testing.T) {
	keeper, ok := CreateEmployee("keeper", "Leo")
	require.True(t, ok)
	zookeeper, ok := CreateEmployee("zookeeper", "Leo")
	require.True(t, ok)
	require.Equal(t, keeper.Role(), zookeeper.Role())
	require.Equal(t, "Zoo Keeper", keeper.Role())
	require.Equal(t, []string{"Feeding animals", "Enclosure cleaning"}, keeper.Responsibilities())

	vet, ok := CreateEmployee("vet", "Anna")
	require.True(t, ok)
	veterinarian, ok := CreateEmployee("Veterinarian", "Anna")
	require.True(t, ok)
	require.Equal(t, vet.Role(), veterinarian.Role())
	require.Equal(t, "Veterinarian", vet.Role())
	require.Equal(t, []string{"Medical examination and treatment"}, vet.Responsibilities())

	_, ok = CreateEmployee("ZooKeeper", "Leo")
	require.True(t, ok)
	_, ok = CreateEmployee("ZOOKEEPER", "Leo")
	require.True(t, ok)
}

func TestCreate_UnknownTokens(t *testing.T) {
	for _, token := range []string{"", "dragon", "lion", "janitor", "keepers"} {
		_, ok := CreateAnimal(token, "x")
		require.False(t, ok, token)
		_, ok = CreateEmployee(token, "x")
		require.False(t, ok, token)
	}
}

func TestCreateAnimal_CaseInsensitiveProperty(t *testing.T) {
	kinds := ListAnimalKinds()
	rapid.Check(t, func(t *rapid.T) {
		kind := rapid.SampledFrom(kinds).Draw(t, "kind")
		name := rapid.StringMatching(`[A-Za-z][a-z]{0,11}`).Draw(t, "name")

		// Randomise the casing of every letter in the token.
		var b strings.Builder
		for i, r := range kind {
			if rapid.Bool().Draw(t, "upper"+string(rune('a'+i%26))) {
				b.WriteString(strings.ToUpper(string(r)))
			} else {
				b.WriteRune(r)
			}
		}
		token := b.String()

		a, ok := CreateAnimal(token, name)
		if !ok {
			t.Fatalf("CreateAnimal(%q) not found", token)
		}
		if !strings.EqualFold(a.Species(), kind) {
			t.Fatalf("species %q does not match kind %q", a.Species(), kind)
		}
		if a.Name() != name {
			t.Fatalf("name %q, want %q", a.Name(), name)
		}
	})
}

func TestCreate_UnsupportedTokensProperty(t *testing.T) {
	known := map[string]bool{}
	for _, k := range append(ListAnimalKinds(), ListEmployeeKinds()...) {
		known[k] = true
	}
	for _, alias := range []string{"keeper", "veterinarian"} {
		known[alias] = true
	}

	rapid.Check(t, func(t *rapid.T) {
		token := rapid.StringMatching(`[A-Za-z]{1,12}`).Draw(t, "token")
		if known[strings.ToLower(token)] {
			t.Skip("token names a real kind")
		}

		if _, ok := CreateAnimal(token, "x"); ok {
			t.Fatalf("CreateAnimal(%q) unexpectedly succeeded", token)
		}
		if _, ok := CreateEmployee(token, "x"); ok {
			t.Fatalf("CreateEmployee(%q) unexpectedly succeeded", token)
		}

		for _, list := range [][]string{ListAnimalKinds(), ListEmployeeKinds()} {
			if len(list) == 0 {
				t.Fatal("available kinds list is empty")
			}
			for i := 1; i < len(list); i++ {
				if list[i-1] >= list[i] {
					t.Fatalf("kinds not sorted: %v", list)
				}
			}
		}
	})
}

func TestCatalogFallbacks_MatchRegisteredKinds(t *testing.T) {
	require.Equal(t, Animals().Kinds(), New(AnimalDomain, WithFallback(knownAnimals()...)).Kinds())
	require.Equal(t, Employees().Kinds(), New(EmployeeDomain, WithFallback(knownEmployees()...)).Kinds())
}
