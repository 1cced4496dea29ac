// Package pipe lifts outcome.Result values through channels for concurrent
// stream processing.
//
// Key constructs:
// - ToChan/ToChanResults: feed values into a pipeline
// - Run/Turnout: fan a stage out across N workers
// - Validate, Switch, Map, DoubleMap, Try, Tee, DoubleTee: stage constructors
// - Finally: collapse results to plain values via handlers
// - Collect/First: drain pipeline output
//
// Cancellation stops the pipeline; with WithProcessOptions fail-remaining
// enabled, queued items are forwarded as failures carrying ctx.Err() instead
// of being dropped. Forwarded failures are delivered like any other result,
// so drain pipeline output (Collect, Finally, First) with a context
// independent of the cancelled pipeline context.
package pipe
