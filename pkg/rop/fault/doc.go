// Package fault provides the structured error taxonomy used by rop results.
//
// An *Error is an inspectable failure value: a Kind, a message, an optional
// machine-readable code, a lazily derived target and stack trace, an inner
// error and, for aggregates, an ordered list of child errors.
//
// Highlights:
// - Kind: tagged variants (Argument, ArgumentNull, Aggregate, Timeout, ...)
// - Convert/Classify: map any Go error onto the most specific Kind
// - SetConverter/WithConverter: replace the classifier process-wide or per context
// - Native: re-materialize an *Error as the original Go error
// - FromPanic: classify a recovered panic value, keeping its stack
// - Render/Fprint: plain and colored error trees
package fault
