// Package async provides a minimal awaitable value, [Promise], and an
// explicitly tagged asynchronous function type, [Func].
//
// # Promises
//
// A [Promise] represents a result that is not yet available. It settles
// exactly once, either fulfilled with a value or rejected with an error,
// and can be awaited any number of times from any goroutine:
//
//	p := async.Go(func() (int, error) { return compute(), nil })
//	n, err := p.Await(ctx)
//
// Panics raised inside [Go] or [Func.Call] are recovered and reject the
// promise with an error wrapping [ErrPanicked].
//
// # Tagged async functions
//
// Go cannot tell from a function value whether it "returns a promise", so
// asynchronous callables are declared through the [Func] type:
//
//	fetch := async.Func[string](func(ctx context.Context) (string, error) {
//	    return load(ctx)
//	})
//	async.IsAsyncFunction(fetch) // true
//	p := fetch.Call(ctx)
//
// A plain func that happens to return a *Promise is NOT reported as
// asynchronous by [IsAsyncFunction]; only the declared type is inspected.
//
// # Portability
//
// [Promise] maps to a JavaScript Promise or a Python asyncio.Future;
// [Func] maps to an `async function` / `async def`.
package async
