// Package timing wraps functions with time-based invocation control:
// throttling, debouncing and sleeping.
//
// # Throttle
//
// A throttled function fires immediately on the first eligible call and
// then drops every call until its cooldown has elapsed:
//
//	save := timing.Throttle(func(doc Doc) { store(doc) }, time.Second)
//	save.Call(doc) // runs store
//	save.Call(doc) // dropped, cooldown still active
//
// # Debounce
//
// A debounced function waits for a quiet period and then fires once with
// the arguments of the most recent call:
//
//	search := timing.Debounce(func(q string) { run(q) }, 300*time.Millisecond)
//	search.Call("g")
//	search.Call("go")  // cancels "g"
//	search.Call("gol") // run("gol") fires 300ms after this call
//
// # Sleep
//
// [Sleep] returns an [async.Promise] that fulfils after the given delay;
// [SleepContext] is the blocking, cancellable form.
//
// Every wrapper owns its own timer state. Wrappers are safe for concurrent
// use and the wrapped function is never called while internal locks are
// held.
package timing
