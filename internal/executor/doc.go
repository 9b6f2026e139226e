// Package executor runs a Build Plan against a Compiler.
//
// A module is handed to a worker only after every one of its dependencies
// completed successfully. Each module carries an atomic counter of unmet
// dependencies; finishing a module decrements the counters of its dependents
// and queues those that reach zero. The number of workers bounds how many
// modules compile at once.
//
// Execution is fail-fast: the first compiler error cancels the run context,
// and every module that transitively depends on the failed one is marked
// skipped without being started. Modules already running finish (or observe
// the cancelled context) and the executor then returns a Report describing
// every module's outcome.
package executor
