package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/zoo/internal/zoo/domain"
)

type widget struct {
	kind string
	name string
}

func widgetFactory(kind string) Factory[widget] {
	return func(name string) (widget, error) {
		return widget{kind: kind, name: name}, nil
	}
}

func TestRegistry_RegisterAndCreate(t *testing.T) {
	r := New[widget]("widget")
	require.NoError(t, r.Register("Gear", widgetFactory("gear")))
	require.NoError(t, r.Register("SpringCoil", widgetFactory("spring")))

	require.Equal(t, []string{"gear", "springcoil"}, r.Kinds())

	for _, token := range []string{"gear", "Gear", "GEAR", " gear "} {
		w, ok := r.Create(token, "g1")
		require.True(t, ok, token)
		require.Equal(t, widget{kind: "gear", name: "g1"}, w)
	}

	// Mixed-case canonical names still resolve by case folding.
	w, ok := r.Create("SPRINGCOIL", "s1")
	require.True(t, ok)
	require.Equal(t, "spring", w.kind)
}

func TestRegistry_RegisterErrors(t *testing.T) {
	r := New[widget]("widget")
	require.ErrorIs(t, r.Register("", widgetFactory("x")), ErrEmptyKind)
	require.ErrorIs(t, r.Register("Gear", nil), ErrNilFactory)

	require.NoError(t, r.Register("Gear", widgetFactory("gear")))
	err := r.Register("gear", widgetFactory("other"))
	require.ErrorIs(t, err, ErrDuplicateKind)

	require.Panics(t, func() { r.MustRegister("GEAR", widgetFactory("x")) })
}

func TestRegistry_UnknownTokenIsNotFound(t *testing.T) {
	r := New[widget]("widget")
	r.MustRegister("Gear", widgetFactory("gear"))

	_, ok := r.Create("sprocket", "s")
	require.False(t, ok)

	_, err := r.Lookup("sprocket")
	require.True(t, domain.IsUnknownKind(err))

	var kindErr *domain.UnknownKindError
	require.True(t, errors.As(err, &kindErr))
	require.Equal(t, "widget", kindErr.Domain)
	require.Equal(t, "sprocket", kindErr.Token)
	require.Equal(t, []string{"gear"}, kindErr.Available)
}

func TestRegistry_FallbackWhenNothingRegistered(t *testing.T) {
	r := New[widget]("widget", WithFallback(
		Kind[widget]{Name: "Bolt", New: widgetFactory("bolt")},
		Kind[widget]{Name: "Anchor", New: widgetFactory("anchor")},
		Kind[widget]{Name: "", New: widgetFactory("ignored")},
		Kind[widget]{Name: "NoFactory"},
	))

	require.Equal(t, []string{"anchor", "bolt"}, r.Kinds())
	w, ok := r.Create("bolt", "b1")
	require.True(t, ok)
	require.Equal(t, "bolt", w.kind)

	// Registering switches the registry off the fallback, and cached
	// resolutions from the fallback are dropped.
	r.MustRegister("Gear", widgetFactory("gear"))
	require.Equal(t, []string{"gear"}, r.Kinds())
	_, ok = r.Create("bolt", "b2")
	require.False(t, ok)
}

func TestRegistry_EmptyRegistryHasNoKinds(t *testing.T) {
	r := New[widget]("widget")
	require.Empty(t, r.Kinds())
	_, ok := r.Create("anything", "x")
	require.False(t, ok)
}

func TestRegistry_ConstructionFailuresAreNotFound(t *testing.T) {
	r := New[widget]("widget")
	r.MustRegister("Broken", func(string) (widget, error) {
		return widget{}, errors.New("missing parts")
	})
	r.MustRegister("Exploding", func(string) (widget, error) {
		panic("boom")
	})

	require.NotPanics(t, func() {
		_, ok := r.Create("broken", "b")
		require.False(t, ok)
		_, ok = r.Create("exploding", "e")
		require.False(t, ok)
	})
}

func TestRegistry_Aliases(t *testing.T) {
	r := New[widget]("widget", WithAliases[widget](map[string]string{
		"Cog": "Gear",
	}))
	r.MustRegister("Gear", widgetFactory("gear"))

	require.Equal(t, "Gear", r.Normalize("cog"))
	require.Equal(t, "Gear", r.Normalize(" COG "))
	require.Equal(t, "Sprocket", r.Normalize("Sprocket"))

	aliases := r.Aliases()
	require.Equal(t, map[string]string{"cog": "Gear"}, aliases)
	aliases["sprocket"] = "Gear"
	require.NotContains(t, r.Aliases(), "sprocket")

	w, ok := r.Create("COG", "c1")
	require.True(t, ok)
	require.Equal(t, "gear", w.kind)
}

func TestRegistry_AliasAfterLookup(t *testing.T) {
	r := New[widget]("widget")
	r.MustRegister("Gear", widgetFactory("gear"))

	_, ok := r.Create("cog", "c1")
	require.False(t, ok)

	r.Alias("Cog", "Gear")
	w, ok := r.Create("cog", "c2")
	require.True(t, ok)
	require.Equal(t, widget{kind: "gear", name: "c2"}, w)
}

func TestRegistry_WithoutCache(t *testing.T) {
	r := New[widget]("widget", WithCache[widget](nil))
	r.MustRegister("Gear", widgetFactory("gear"))

	kind, err := r.Lookup("GeAr")
	require.NoError(t, err)
	require.Equal(t, "gear", kind)
}

func TestCapitalize(t *testing.T) {
	require.Equal(t, "", capitalize(""))
	require.Equal(t, "Wolf", capitalize("wolf"))
	require.Equal(t, "Wolf", capitalize("wOLF"))
	require.Equal(t, "Ёж", capitalize("ёЖ"))
}
