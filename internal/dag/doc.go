// Package dag turns a registry of module manifests into an immutable Module
// Graph: one node per registered module and one edge per declared dependency,
// tagged public or private.
//
// Build resolves every dependency name before returning, so downstream stages
// (scheduling, visibility, execution) never see a dangling edge. When a name
// appears in both of a module's lists the public edge wins; in strict mode the
// overlap is reported as a ConflictingVisibilityError instead.
//
// Node order is registration order and each node's dependencies keep their
// declaration order (public list first, then private). Everything built on
// top of the graph relies on that order for deterministic output.
package dag
