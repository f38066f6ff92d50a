// Package rop provides Option and Result values for explicit, panic-free
// handling of absent values and failures.
//
// Overview:
// - Option[T]: Some or None, with Map/Filter/And/Or/Zip combinators
// - ResultOf[T,E] and Result[T]: Ok or Err, Result fixing E to *fault.Error
// - Try/TryDo: run a function and capture returned errors and panics as Err
// - *Async: channel-returning variants that check the context first
// - Collect/TryAll: gather many results, aggregating failures in order
// - Nil/Void: the unit payload
//
// Combinators that change the payload type are free functions (MapOption,
// MapResult, MapError, ...) since Go methods cannot declare type parameters.
//
// Misuse, such as Unwrap on the wrong variant or Some with a nil value,
// panics with a *fault.Error. Everything else is returned as data.
package rop
