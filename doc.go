// Package vgrid is a headless, high-performance engine for virtualized
// tabular data grids in Go.
//
// 🚀 What is vgrid?
//
//	An in-memory, render-agnostic grid core that brings together:
//
//	  • Virtual positioning: cumulative offset tables, visible-range math, hit-testing
//	  • Pluggable storage: sparse (coordinate-keyed) and columnar (typed dense) backends
//	  • Stable multi-key sorting, hierarchical column groups, bounded undo/redo
//
// ✨ Why choose vgrid?
//
//   - Headless              — no DOM, no paint, no I/O; bring your own renderer
//   - Bounded               — 100k+ rows with O(visible) work per frame
//   - Reactive              — every mutation announces itself on a typed event bus
//   - Pure Go               — no cgo, one small dependency surface
//
// Under the hood, everything is organized one package per concern:
//
//	eventbus/     — typed pub/sub dispatch with snapshot iteration
//	depgraph/     — directed graph, cycle detection, topological order
//	axis/         — per-dimension sizes and cumulative offsets
//	datamodel/    — sparse & columnar cell storage behind one interface
//	sortengine/   — stable multi-key sort producing index permutations
//	sortstate/    — reactive holder of (data, sort model, permutation)
//	group/        — hierarchical column groups, cycle-free by construction
//	groupmanager/ — event-emitting group façade + renderer registry
//	viewport/     — visible range from axes, scroll offset, and overscan
//	history/      — bounded command stack with edit coalescing
//	grid/         — the façade wiring all of the above together
//
// Quick ASCII example:
//
//	    scroll ──▶ ┌────────────────────┐
//	               │ ▒▒▒▒ visible range │  only these cells are
//	               │ ▒▒▒▒ + overscan    │  ever materialized
//	               └────────────────────┘
//	    100,000 logical rows live below the fold, untouched.
//
// Each package's example_test.go holds runnable Example functions, and
// the package tests walk through worked end-to-end scenarios:
// multi-key sorting, coalesced undo, group re-parenting, and more.
//
//	go get github.com/vgrid-io/vgrid
package vgrid
