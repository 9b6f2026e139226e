// Package scheduler turns a Module Graph into a Build Plan.
//
// # How It Works
//
// Scheduling runs in two passes over the immutable graph:
//  1. Cycle detection: a depth-first walk that marks modules in progress.
//     Reaching an in-progress module means the walk closed a loop, and the
//     loop is reported as a DependencyCycleError whose Path starts and ends
//     with the same module (A -> B -> A is reported as [A B A]).
//  2. Ordering: Kahn's algorithm over the acyclic graph. Whenever several
//     modules have all of their dependencies scheduled, the one registered
//     first is emitted next.
//
// # Determinism
//
// Roots are walked in registration order and dependencies in declaration
// order, so the reported cycle and the resulting plan are identical on every
// run for the same input. No map iteration order leaks into either.
//
// # Layers
//
// A Plan also groups its modules into layers. Every module of layer n depends
// only on modules of layers below n, so the modules of one layer may be built
// concurrently once the previous layers are done.
package scheduler
