// Package cspobserve defines the hook by which package csp and package
// cspproc report internal events (spurious wakeups, poison propagation,
// ALT selection, process lifecycle) to an injected observer, instead of
// writing to a package-level logging singleton.
//
// The default Observer is a no-op; NewLogifaceObserver wires the hook up
// to a github.com/joeycumines/logiface Logger (typically backed by
// github.com/joeycumines/stumpy) for production use.
package cspobserve
