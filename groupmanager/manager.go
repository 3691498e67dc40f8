package groupmanager

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vgrid-io/vgrid/eventbus"
	"github.com/vgrid-io/vgrid/group"
)

// Manager orchestrates a *group.Model: every mutation that succeeds
// emits the matching Event, and a Registry resolves which renderer
// draws a given group's header.
//
// The zero value is not usable; construct with NewManager.
type Manager struct {
	model    *group.Model
	bus      *eventbus.Bus[Event]
	registry *Registry
}

// Option configures a Manager at construction time.
type Option func(*managerConfig)

type managerConfig struct {
	model  *group.Model
	bus    *eventbus.Bus[Event]
	logger zerolog.Logger
}

// WithModel attaches a caller-owned group.Model instead of constructing
// a fresh one.
func WithModel(m *group.Model) Option {
	return func(cfg *managerConfig) {
		cfg.model = m
	}
}

// WithBus attaches a caller-owned bus instead of Manager's own private
// one.
func WithBus(bus *eventbus.Bus[Event]) Option {
	return func(cfg *managerConfig) {
		cfg.bus = bus
	}
}

// WithLogger overrides the logger the renderer registry uses to report
// re-registration warnings.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *managerConfig) {
		cfg.logger = logger
	}
}

// NewManager constructs a Manager with a "default" renderer registered
// up front (identity passthrough of its options), ready for callers to
// overwrite via Register("default", ...).
func NewManager(opts ...Option) *Manager {
	cfg := managerConfig{
		model:  group.New(),
		bus:    eventbus.New[Event](),
		logger: log.Logger,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	registry := newRegistry(cfg.logger)
	_ = registry.Register(defaultRendererName, func(opts RendererOptions) Renderer { return opts })

	return &Manager{model: cfg.model, bus: cfg.bus, registry: registry}
}

// Bus returns the eventbus this Manager emits on, for callers to
// Subscribe.
func (m *Manager) Bus() *eventbus.Bus[Event] { return m.bus }

// Registry returns the renderer registry.
func (m *Manager) Registry() *Registry { return m.registry }

// Model returns the underlying group.Model for read-only queries
// (GetGroup, GetChildren, GetDescendants, ...).
func (m *Manager) Model() *group.Model { return m.model }

// ModelQuery is the read-only hierarchy view a renderer receives:
// everything needed to draw a group header and its subtree, nothing
// that mutates. *group.Model satisfies it; renderers must not type-assert
// their way back to the mutable model.
type ModelQuery interface {
	GetGroup(id string) (group.Group, bool)
	GetAll() []group.Group
	GetRoots() []string
	IsExpanded(id string) (bool, error)
	GetChildren(id string) []string
	GetDescendants(id string) []string
	GetAncestors(id string) []string
	BuildHierarchyTree() []*group.Node
}

// Query returns the read-only view of the group hierarchy for renderers.
func (m *Manager) Query() ModelQuery { return m.model }

// ResolveRenderer picks the renderer for a group header. An explicit
// registered name wins; an unknown explicit name resolves to absent
// rather than silently falling back. With no name, a caller-supplied
// inline factory builds a fresh renderer; with neither, the registry's
// default applies.
func (m *Manager) ResolveRenderer(name string, inline RendererFactory, opts RendererOptions) (Renderer, bool) {
	if name != "" {
		return m.registry.Get(name, opts)
	}
	if inline != nil {
		return inline(opts), true
	}

	return m.registry.GetDefaultRenderer(opts)
}

// AddGroup delegates to the underlying model and, on success, emits
// EventGroupAdded followed by EventHierarchyChanged naming the new
// group and its parent (if any).
func (m *Manager) AddGroup(g group.Group) error {
	if err := m.model.AddGroup(g); err != nil {
		return err
	}

	affected := []string{g.ID}
	if g.ParentGroupID != "" {
		affected = append(affected, g.ParentGroupID)
	}

	eventbus.Emit(m.bus, EventGroupAdded, g.ID)
	eventbus.Emit(m.bus, EventHierarchyChanged, HierarchyChangedPayload{AffectedGroupIDs: affected})

	return nil
}

// RemoveGroup delegates to the underlying model and, on success, emits
// EventGroupRemoved followed by EventHierarchyChanged naming every
// group whose parent/child/level relationships may have shifted.
func (m *Manager) RemoveGroup(id string, cascade bool) error {
	descendants := m.model.GetDescendants(id)
	ancestors := m.model.GetAncestors(id)

	if err := m.model.RemoveGroup(id, cascade); err != nil {
		return err
	}

	affected := append([]string{id}, ancestors...)
	affected = append(affected, descendants...)

	eventbus.Emit(m.bus, EventGroupRemoved, id)
	eventbus.Emit(m.bus, EventHierarchyChanged, HierarchyChangedPayload{AffectedGroupIDs: affected})

	return nil
}

// UpdateGroup delegates to the underlying model and, on success, emits
// EventGroupUpdated followed by EventHierarchyChanged naming id and its
// full descendant subtree (whose levels may have just been recomputed).
func (m *Manager) UpdateGroup(id string, patch group.GroupPatch) error {
	if err := m.model.UpdateGroup(id, patch); err != nil {
		return err
	}

	affected := append([]string{id}, m.model.GetDescendants(id)...)

	eventbus.Emit(m.bus, EventGroupUpdated, id)
	eventbus.Emit(m.bus, EventHierarchyChanged, HierarchyChangedPayload{AffectedGroupIDs: affected})

	return nil
}

// ToggleGroup delegates to the underlying model and, on success, emits
// EventGroupToggled with id's new expanded state.
func (m *Manager) ToggleGroup(id string) error {
	if err := m.model.ToggleGroup(id); err != nil {
		return err
	}

	expanded, _ := m.model.IsExpanded(id)
	eventbus.Emit(m.bus, EventGroupToggled, GroupToggledPayload{GroupID: id, Expanded: expanded})

	return nil
}

// ExpandGroup marks id expanded and emits EventGroupToggled.
func (m *Manager) ExpandGroup(id string) error {
	if err := m.model.ExpandGroup(id); err != nil {
		return err
	}

	eventbus.Emit(m.bus, EventGroupToggled, GroupToggledPayload{GroupID: id, Expanded: true})

	return nil
}

// CollapseGroup marks id collapsed and emits EventGroupToggled.
func (m *Manager) CollapseGroup(id string) error {
	if err := m.model.CollapseGroup(id); err != nil {
		return err
	}

	eventbus.Emit(m.bus, EventGroupToggled, GroupToggledPayload{GroupID: id, Expanded: false})

	return nil
}
