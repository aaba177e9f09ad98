// Package mass implements channel-based building blocks that lift solo
// primitives and provide orchestration (attaching, validation, mapping, try,
// finalizing) with more control over cancellation behavior.
//
// It is typically used by higher-level packages (lite) to compose concurrent
// pipelines, integrating cancellation handlers and select loops.
package mass
