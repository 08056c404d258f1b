// Package datastore implements the pluggable buffering policies used by
// buffered channels in package csp.
//
// A Store is pure state: it holds no mutex and performs no synchronization
// of its own. The channel kernel in package csp is the sole caller of a
// Store's methods, always from inside the channel's monitor, so a Store
// never needs to protect itself from concurrent access.
package datastore
