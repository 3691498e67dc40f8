// Package groupmanager is a thin orchestration layer over group: it
// wraps a *group.Model, emits events after every successful mutation,
// and owns a renderer registry (name -> factory function) so a caller
// can render a group header without this package knowing anything
// about rendering itself.
//
// What:
//
//   - Manager: wraps group.Model; AddGroup/RemoveGroup/UpdateGroup/
//     ToggleGroup delegate to it and, on success, emit EventGroupAdded/
//     EventGroupRemoved/EventGroupUpdated/EventGroupToggled/
//     EventHierarchyChanged.
//   - Registry: Register/Unregister/Get/SetDefaultRenderer/
//     GetDefaultRenderer/Clear over name -> RendererFactory. "default"
//     can never be unregistered or cleared.
//
// Why:
//
//   - Separating "does the structural mutation succeed" (group) from
//     "who gets notified, and how is it drawn" (groupmanager) keeps the
//     hierarchy model free of rendering and eventing concerns.
//
// Contract:
//
//   - Events fire only after the underlying mutation succeeds.
//   - Renderer resolution order: explicit name, then inline options
//     (caller-built fresh renderer), then the registry default.
package groupmanager
