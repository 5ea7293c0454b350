// Package fake
// Author: momentics <momentics@gmail.com>
//
// Test doubles for hioload-vec. Recorder is an api.Lifecycle that counts
// every element lifetime event and journals the event order, letting tests
// assert both totals and sequencing without touching container internals.
package fake
