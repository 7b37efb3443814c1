// Package debounce collapses bursts of calls into a single trailing
// invocation.
//
// A [Debouncer] delays invoking its function until wait time has elapsed
// since the most recent call. Every call restarts the timer and replaces
// the argument the eventual invocation will receive, so only the latest
// call of a burst survives.
//
// # Usage
//
//	d, _ := debounce.New(300*time.Millisecond, func(query string) {
//	    search(query)
//	})
//
//	d.Call("g")
//	d.Call("go")
//	d.Call("gopher") // only this one reaches search, 300ms after it
//
// Invocation is fire-and-forget: the function runs on the timer goroutine
// and its return value, if any, is not propagated. Use [Debouncer.Cancel]
// to drop a pending invocation and [Debouncer.Flush] to force it to run
// immediately.
package debounce
