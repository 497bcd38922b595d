package abstractfactory

import (
	"sort"
	"sync"

	"github.com/kureharyosuke/DesignPattern/errors"
)

// FactoryFunc constructs a factory for one product family.
type FactoryFunc func() AbstractFactory

// Registry maps family tags to factory constructors. It exists so callers
// (the CLI in particular) can select a family by name and so additional
// families can be plugged in without touching client code.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]FactoryFunc
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]FactoryFunc),
	}
}

// Register adds a factory constructor under the given family tag.
// Returns an error if the tag is already taken.
func (r *Registry) Register(family string, fn FactoryFunc) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[family]; exists {
		return errors.Newf("product family already registered: %s", family)
	}

	r.factories[family] = fn
	return nil
}

// New constructs a fresh factory for the given family tag. Unknown tags
// wrap errors.ErrNotFound so callers can test with errors.IsNotFoundError.
func (r *Registry) New(family string) (AbstractFactory, error) {
	r.mu.RLock()
	fn, ok := r.factories[family]
	r.mu.RUnlock()

	if !ok {
		return nil, errors.NewNotFoundError("unknown product family: %s", family)
	}
	return fn(), nil
}

// Families returns all registered family tags in sorted order.
func (r *Registry) Families() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	families := make([]string, 0, len(r.factories))
	for family := range r.factories {
		families = append(families, family)
	}
	sort.Strings(families)
	return families
}

// DefaultRegistry returns a registry holding the two built-in families.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	// Registration of built-ins cannot conflict on a fresh registry.
	_ = r.Register("1", func() AbstractFactory { return NewConcreteFactory1() })
	_ = r.Register("2", func() AbstractFactory { return NewConcreteFactory2() })
	return r
}
