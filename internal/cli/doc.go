// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// translates cobra commands and flags, merged with MODGRAPH_* environment
// variables and an optional YAML config file through viper, into the
// application's internal configuration.
package cli
