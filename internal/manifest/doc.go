// Package manifest defines the in-memory form of a module build descriptor:
// the module's name, its precompiled-header usage mode and its ordered public
// and private dependency lists.
//
// A Manifest is created once by a loader and treated as immutable afterwards.
// Ownership moves to the registry on registration; every other component
// refers to modules by name.
package manifest
