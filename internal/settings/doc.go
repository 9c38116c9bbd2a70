// Package settings holds the process-wide, read-only application settings
// loaded from a properties resource. Three holders are provided:
//
//   - Eager loads the resource when it is constructed.
//   - Lazy defers the load to the first Instance call and guards it with
//     double-checked locking, so the resource is read exactly once no matter
//     how many goroutines race on first access. This is the default.
//   - Unguarded defers the load without any synchronization. It is kept to
//     illustrate the check-then-create race and must not be used from more
//     than one goroutine before it has been initialized.
//
// Once loaded, a Store never changes and may be read concurrently without
// locking.
package settings
