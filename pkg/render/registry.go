package render

import (
	"fmt"
	"sort"
	"sync"

	"github.com/goliatone/go-formview/pkg/element"
	"github.com/goliatone/go-formview/pkg/htmlattr"
)

// Helper renders a markup fragment for a single form element.
type Helper interface {
	Name() string
	Render(el element.Element, attrs htmlattr.Attrs) (string, error)
}

// Registry stores helpers by name, providing discovery and duplication
// safeguards. Callers can embed or wrap this for dependency injection.
type Registry struct {
	mu      sync.RWMutex
	helpers map[string]Helper
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		helpers: make(map[string]Helper),
	}
}

// Register adds a helper by its Name(). Duplicate names return an error.
func (r *Registry) Register(helper Helper) error {
	if helper == nil {
		return fmt.Errorf("render: helper is required")
	}
	name := helper.Name()
	if name == "" {
		return fmt.Errorf("render: helper name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.helpers[name]; exists {
		return fmt.Errorf("render: helper %q already registered", name)
	}

	r.helpers[name] = helper
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(helper Helper) {
	if err := r.Register(helper); err != nil {
		panic(err)
	}
}

// Get retrieves a helper by name.
func (r *Registry) Get(name string) (Helper, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	helper, ok := r.helpers[name]
	if !ok {
		return nil, fmt.Errorf("render: helper %q not found", name)
	}
	return helper, nil
}

// MustGet panics if the helper is missing.
func (r *Registry) MustGet(name string) Helper {
	helper, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return helper
}

// List returns a sorted list of helper names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.helpers))
	for name := range r.helpers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
