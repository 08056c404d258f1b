// Package cspproc launches CSP-style processes as goroutines and joins
// them, propagating the first failure and canceling its siblings, the way
// a CSP runtime's PAR construct would.
package cspproc
