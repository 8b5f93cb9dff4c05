// Package debounce provides a cancellable delayed-propagation utility.
//
// A Debouncer sits between a rapidly changing source (keystrokes in the
// search box) and a consumer that only wants settled values. Every new
// value restarts the timer; only a value that survives the full interval
// unchanged is delivered, and teardown via Stop cancels anything pending
// so a consumer that has gone away is never called.
//
// The debouncer governs timing only; it performs no I/O of its own.
package debounce
