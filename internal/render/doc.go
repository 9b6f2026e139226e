// Package render writes plans, graphs, visibility sets and build reports in
// one of several formats: styled text for terminals, JSON and YAML for tools,
// and Graphviz DOT for graphs.
package render
