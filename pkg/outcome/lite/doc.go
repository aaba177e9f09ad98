// Package lite provides lightweight channel-lifted helpers that wrap solo
// primitives for concurrent pipelines. It is designed for simple fan-out/fan-in
// flows, with RunWith/TurnoutWith available when cancellation handling needs
// to be explicit.
//
// Common usage:
// - Run: execute an engine over an input channel with a fixed number of lines
// - With/Validate/Try/Switch/Map/DoubleMap: lift solo operations over channels
// - Turnout: compose stages with configurable parallelism
// - Finally: map Outcome[In, E] to Out on completion
package lite
