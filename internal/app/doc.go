// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the primary execution lifecycle (load,
// register, build the graph, schedule, then render or execute), decoupled
// from any specific entrypoint like a CLI or server.
package app
