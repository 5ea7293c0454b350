// Package api
// Author: momentics <momentics@gmail.com>
//
// Public contracts for hioload-vec: the element Lifecycle hooks consumed by
// instrumentation, structured error types, and region accounting stats.
// Implementation packages (mem, vec, fake) depend on api and never on each
// other's internals.
package api
