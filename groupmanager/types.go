package groupmanager

import "errors"

// Sentinel errors for the renderer registry.
var (
	ErrEmptyRendererName    = errors.New("groupmanager: renderer name is empty")
	ErrNilFactory           = errors.New("groupmanager: renderer factory is nil")
	ErrDefaultProtected     = errors.New("groupmanager: the \"default\" renderer cannot be removed")
	ErrDefaultNotRegistered = errors.New("groupmanager: renderer to set as default is not registered")
)

// defaultRendererName is the one registry entry Unregister/Clear must
// never remove.
const defaultRendererName = "default"

// Event is the small, fixed set of events Manager emits.
type Event string

const (
	EventGroupAdded       Event = "groupAdded"
	EventGroupRemoved     Event = "groupRemoved"
	EventGroupUpdated     Event = "groupUpdated"
	EventGroupToggled     Event = "groupToggled"
	EventHierarchyChanged Event = "hierarchyChanged"
)

// GroupToggledPayload is the payload of EventGroupToggled.
type GroupToggledPayload struct {
	GroupID  string
	Expanded bool
}

// HierarchyChangedPayload is the payload of EventHierarchyChanged,
// naming every group whose Level or child/parent relationships changed
// as a side effect of the triggering mutation.
type HierarchyChangedPayload struct {
	AffectedGroupIDs []string
}

// Renderer is the opaque product of a RendererFactory: a thing that,
// given a group and a model-query adapter, can produce a visual
// element. Rendering itself is outside this package's concern; Renderer
// is deliberately `any` so any collaborator's concrete type fits.
type Renderer any

// RendererOptions configures one call to a RendererFactory.
type RendererOptions map[string]any

// RendererFactory builds a Renderer from options.
type RendererFactory func(opts RendererOptions) Renderer
