// Package solo contains single-value, synchronous primitives that operate
// on Outcome[T, E]. These functions form the core building blocks for
// failure-aware pipelines without channels.
//
// Highlights:
// - Succeed/Fail: construct Outcome[T, E]
// - With/WithFunc: attach a context value to the failure path
// - Validate/AndValidate: apply validation producing a failure on invalid input
// - Switch: move from Outcome[In, E] to Outcome[Out, E]
// - Map/MapFailure/DoubleMap: transform values on either rail
// - Try: call a function (Out, error) and convert the error to a failure
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/failure handlers
package solo
