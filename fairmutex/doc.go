// Package fairmutex implements the fair binary semaphore used by package
// csp to serialize competing readers (on One2Any/Any2Any channels) or
// competing writers (on Any2One/Any2Any channels).
//
// Unlike sync.Mutex, whose internal queueing discipline is an
// implementation detail Go makes no FIFO guarantee about, Mutex here
// maintains its own explicit wait queue, so arrival order is always
// preserved.
package fairmutex
