// Package chain provides a fluent wrapper around Outcome[T, E]
// for building synchronous failure-aware chains using solo primitives.
//
// It composes functions like Switch, Map, Try, With, and Finally behind a
// convenient Chain[T, E] type. This enables ergonomic pipelines without
// dealing directly with branching results at each step.
//
// Key operations:
// - Start/FromValue: begin a chain from an Outcome[T, E] or value
// - Then: switch to a new Outcome[U, E] via a function
// - ThenTry: call a function (U, error) and convert the error to a failure
// - Map: transform the successful value (T -> U)
// - With/WithFunc: attach a context value to the failure path
// - Ensure: run side effects on success without changing the result
// - Finally: collapse the chain into a final value via handlers
//
// Operations that change a type parameter (Then, Map, With, Finally) are
// package-level functions because Go methods cannot introduce new type
// parameters.
package chain
