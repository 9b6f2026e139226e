// Package registry holds every module manifest of a build session.
//
// The Registry is the single owner of manifests for the lifetime of a
// session. It indexes them by name, rejects duplicate names and remembers the
// order in which modules were registered. That order is the deterministic
// tie-break used later by the scheduler, so loaders must register manifests
// in a stable order (sorted file paths, declaration order within a file).
package registry
