// Package chain provides a minimal fluent Chain[T] for synchronous
// composition of outcome.Result[T] values.
//
// It keeps the API surface small:
// - Start/FromValue: create a Chain
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map/Validate/ValidateAll: transform or check the successful value
// - Or/And/RepeatUntil/While: combine and repeat chains
// - Ensure: trigger side effects without changing the result
// - Finally: reduce to a concrete value via handlers
// - To/MapTo/TryTo: switch the chain to a new value type
//
// Chain is ideal for small services or tests where lightweight synchronous
// chaining improves readability without introducing channels.
package chain
