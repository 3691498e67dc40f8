package groupmanager

import (
	"sync"

	"github.com/rs/zerolog"
)

// Registry maps renderer names to factory functions. The zero value is
// not usable; construct with newRegistry (via NewManager).
type Registry struct {
	mu          sync.RWMutex
	byName      map[string]RendererFactory
	logger      zerolog.Logger
	defaultName string
}

func newRegistry(logger zerolog.Logger) *Registry {
	return &Registry{
		byName:      make(map[string]RendererFactory),
		logger:      logger,
		defaultName: defaultRendererName,
	}
}

// Register adds or overwrites the factory for name. Re-registering an
// existing name overwrites it and logs a warning rather than erroring.
func (r *Registry) Register(name string, factory RendererFactory) error {
	if name == "" {
		return ErrEmptyRendererName
	}
	if factory == nil {
		return ErrNilFactory
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[name]; exists {
		r.logger.Warn().Str("renderer", name).Msg("groupmanager: overwriting existing renderer registration")
	}
	r.byName[name] = factory

	return nil
}

// Unregister removes name. The name "default" can never be removed.
func (r *Registry) Unregister(name string) error {
	if name == defaultRendererName {
		return ErrDefaultProtected
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byName, name)
	if r.defaultName == name {
		r.defaultName = defaultRendererName
	}

	return nil
}

// Get builds a renderer from name's factory with opts, or reports
// absent if name is not registered.
func (r *Registry) Get(name string, opts RendererOptions) (Renderer, bool) {
	r.mu.RLock()
	factory, ok := r.byName[name]
	r.mu.RUnlock()

	if !ok {
		return nil, false
	}

	return factory(opts), true
}

// SetDefaultRenderer designates name as the default; name must already
// be registered.
func (r *Registry) SetDefaultRenderer(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[name]; !ok {
		return ErrDefaultNotRegistered
	}
	r.defaultName = name

	return nil
}

// GetDefaultRenderer builds a renderer from the current default
// factory with opts. False if no default has ever been registered.
func (r *Registry) GetDefaultRenderer(opts RendererOptions) (Renderer, bool) {
	r.mu.RLock()
	name := r.defaultName
	factory, ok := r.byName[name]
	r.mu.RUnlock()

	if !ok {
		return nil, false
	}

	return factory(opts), true
}

// Clear removes every registered renderer except "default".
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept, hasDefault := r.byName[defaultRendererName]
	r.byName = make(map[string]RendererFactory)
	if hasDefault {
		r.byName[defaultRendererName] = kept
	}
	r.defaultName = defaultRendererName
}
