package registry

import (
	"errors"
	"fmt"
	"maps"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/zjrosen/zoo/internal/cachemanager"
	"github.com/zjrosen/zoo/internal/log"
	"github.com/zjrosen/zoo/internal/zoo/domain"
)

// Registry errors
var (
	ErrDuplicateKind = errors.New("kind already registered")
	ErrEmptyKind     = errors.New("kind name cannot be empty")
	ErrNilFactory    = errors.New("kind factory cannot be nil")
)

// Factory constructs an entity with the given display name.
type Factory[T any] func(name string) (T, error)

// Kind pairs a canonical kind name (e.g. "Wolf", "ZooKeeper") with its factory.
type Kind[T any] struct {
	Name string
	New  Factory[T]
}

// Option configures a Registry.
type Option[T any] func(*Registry[T])

// WithFallback sets the static known-kinds list used while no kind is registered.
func WithFallback[T any](kinds ...Kind[T]) Option[T] {
	return func(r *Registry[T]) {
		r.fallback = newKindTable[T]()
		for _, k := range kinds {
			if k.Name == "" || k.New == nil {
				continue
			}
			r.fallback.put(k)
		}
	}
}

// WithAliases maps alternative tokens to canonical kind names.
// Alias keys are matched case-insensitively.
func WithAliases[T any](aliases map[string]string) Option[T] {
	return func(r *Registry[T]) {
		for alias, kind := range aliases {
			r.aliases[strings.ToLower(alias)] = kind
		}
	}
}

// WithCache replaces the token resolution cache. Pass nil to disable caching.
func WithCache[T any](cache cachemanager.CacheManager[string, string]) Option[T] {
	return func(r *Registry[T]) {
		r.cache = cache
	}
}

// Registry resolves kind tokens of one entity domain and instantiates kinds.
type Registry[T any] struct {
	domain     string
	registered *kindTable[T]
	fallback   *kindTable[T]
	aliases    map[string]string
	cache      cachemanager.CacheManager[string, string]
	resolver   *cachemanager.ReadThroughCache[string, string, string]
}

// New creates an empty registry for the named entity domain.
func New[T any](domainName string, opts ...Option[T]) *Registry[T] {
	r := &Registry[T]{
		domain:     domainName,
		registered: newKindTable[T](),
		fallback:   newKindTable[T](),
		aliases:    make(map[string]string),
		cache: cachemanager.NewInMemoryCacheManager[string, string](
			domainName+"-kinds", cachemanager.NoExpiration, cachemanager.NoCleanup),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.resolver = cachemanager.NewReadThroughCache[string, string, string](r.cache, r.resolve, cachemanager.NoExpiration)
	return r
}

// Domain returns the entity domain name, e.g. "animal".
func (r *Registry[T]) Domain() string {
	return r.domain
}

// Register adds a kind. The canonical name keeps its casing for exact
// matches; listing and case-insensitive lookup use its lowercase form.
func (r *Registry[T]) Register(name string, factory Factory[T]) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyKind
	}
	if factory == nil {
		return ErrNilFactory
	}
	if r.registered.has(name) {
		return fmt.Errorf("%s registry: %w: %q", r.domain, ErrDuplicateKind, name)
	}
	r.registered.put(Kind[T]{Name: name, New: factory})
	r.resolver.Invalidate()
	log.Debug(log.CatRegistry, "kind registered", "domain", r.domain, "kind", name)
	return nil
}

// MustRegister is Register for init-time use. It panics on error.
func (r *Registry[T]) MustRegister(name string, factory Factory[T]) {
	if err := r.Register(name, factory); err != nil {
		panic(err)
	}
}

// Alias maps alias to the canonical kind name. Later calls for the same
// alias replace the earlier mapping.
func (r *Registry[T]) Alias(alias, kind string) {
	r.aliases[strings.ToLower(strings.TrimSpace(alias))] = kind
	r.resolver.Invalidate()
}

// Aliases returns a copy of the alias table, keyed by lowercase alias.
func (r *Registry[T]) Aliases() map[string]string {
	return maps.Clone(r.aliases)
}

// Kinds returns the sorted lowercase names of the available kinds. When no
// kind has registered, the fallback list is reported instead.
func (r *Registry[T]) Kinds() []string {
	return r.active().names()
}

// Normalize maps token through the alias table, case-insensitively.
// Tokens without an alias pass through unchanged apart from trimming.
func (r *Registry[T]) Normalize(token string) string {
	trimmed := strings.TrimSpace(token)
	if kind, ok := r.aliases[strings.ToLower(trimmed)]; ok {
		return kind
	}
	return trimmed
}

// Lookup resolves token to the lowercase name of a kind.
// Returns a *domain.UnknownKindError when nothing matches.
func (r *Registry[T]) Lookup(token string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(token))
	return r.resolver.Get(key, token)
}

// Create instantiates the kind named by token with the given display name.
// Unknown tokens and any construction failure report false.
func (r *Registry[T]) Create(token, name string) (T, bool) {
	var zero T

	kind, err := r.Lookup(token)
	if err != nil {
		log.Debug(log.CatRegistry, "kind not found", "domain", r.domain, "token", token)
		return zero, false
	}

	entry, ok := r.active().get(kind)
	if !ok {
		return zero, false
	}

	entity, err := construct(entry.New, name)
	if err != nil {
		log.Warn(log.CatRegistry, "kind construction failed", "domain", r.domain, "kind", entry.Name, "error", err)
		return zero, false
	}
	return entity, true
}

// resolve maps a raw token to a lowercase kind name in the active table.
func (r *Registry[T]) resolve(token string) (string, error) {
	table := r.active()

	candidate := r.Normalize(token)

	for _, variant := range []string{candidate, capitalize(candidate)} {
		if entry, ok := table.exact(variant); ok {
			return strings.ToLower(entry.Name), nil
		}
	}
	if entry, ok := table.get(strings.ToLower(candidate)); ok {
		return strings.ToLower(entry.Name), nil
	}

	return "", domain.NewUnknownKindError(r.domain, token, table.names())
}

func (r *Registry[T]) active() *kindTable[T] {
	if r.registered.len() > 0 {
		return r.registered
	}
	return r.fallback
}

// construct runs factory and converts a panic into an error.
func construct[T any](factory Factory[T], name string) (entity T, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("factory panicked: %v", rec)
		}
	}()
	return factory(name)
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// kindTable indexes kinds by canonical name and by lowercase name.
type kindTable[T any] struct {
	byName map[string]Kind[T]
	byFold map[string]string
}

func newKindTable[T any]() *kindTable[T] {
	return &kindTable[T]{
		byName: make(map[string]Kind[T]),
		byFold: make(map[string]string),
	}
}

func (t *kindTable[T]) put(k Kind[T]) {
	t.byName[k.Name] = k
	t.byFold[strings.ToLower(k.Name)] = k.Name
}

func (t *kindTable[T]) has(name string) bool {
	_, ok := t.byFold[strings.ToLower(name)]
	return ok
}

func (t *kindTable[T]) exact(name string) (Kind[T], bool) {
	k, ok := t.byName[name]
	return k, ok
}

func (t *kindTable[T]) get(lower string) (Kind[T], bool) {
	name, ok := t.byFold[lower]
	if !ok {
		return Kind[T]{}, false
	}
	return t.byName[name], true
}

func (t *kindTable[T]) len() int {
	return len(t.byName)
}

func (t *kindTable[T]) names() []string {
	names := make([]string, 0, len(t.byFold))
	for lower := range t.byFold {
		names = append(names, lower)
	}
	sort.Strings(names)
	return names
}
