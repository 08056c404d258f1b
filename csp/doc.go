// Package csp implements the CSP channel kernel and the Alternative
// (selective-wait) engine: synchronous and buffered message passing across
// all four channel multiplicities (one2one, one2any, any2one, any2any),
// extended rendezvous, and poison propagation.
//
// The kernel is built on a plain sync.Mutex guarding per-channel state,
// plus a "doorbell" channel that's closed and replaced to broadcast a
// state change to every waiter, the idiomatic Go stand-in for the monitor
// wait/notify a thread-based CSP runtime would use natively. No channel
// operation here uses Go's native chan as its value-transfer mechanism;
// that's the thing being implemented.
package csp
