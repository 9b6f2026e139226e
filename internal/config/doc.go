// Package config defines the format-agnostic result of loading manifest files
// (Model) and the Loader contract implemented by the format adapters.
//
// Load walks the requested paths, hands each file to the loader registered for
// its extension and concatenates the manifests in a stable order: paths in the
// order given, files sorted lexically within a directory, blocks in
// declaration order within a file. The registry turns that order into the
// scheduler's tie-break, so it must never depend on map iteration or
// filesystem enumeration order.
package config
