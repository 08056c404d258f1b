package cspobserve

import (
	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// logifaceObserver adapts an Observer onto a logiface.Logger, matching the
// field names and level choices the logiface-stumpy example package uses.
type logifaceObserver struct {
	log *logiface.Logger[*stumpy.Event]
}

// NewLogifaceObserver returns an Observer that writes structured log lines
// through log. Pass stumpy.L.New(stumpy.L.WithStumpy()) for a production
// default, or any other *logiface.Logger[*stumpy.Event] built the same way
// for tests or alternate writers.
func NewLogifaceObserver(log *logiface.Logger[*stumpy.Event]) Observer {
	return &logifaceObserver{log: log}
}

func (o *logifaceObserver) SpuriousWakeup() {
	o.log.Debug().Log(`csp: spurious wakeup`)
}

func (o *logifaceObserver) PoisonRaised(strength int) {
	o.log.Info().Int(`strength`, strength).Log(`csp: poison raised`)
}

func (o *logifaceObserver) AltSelected(index int) {
	o.log.Debug().Int(`index`, index).Log(`csp: alt selected`)
}

func (o *logifaceObserver) ProcessStarted(name string) {
	o.log.Info().Str(`process`, name).Log(`cspproc: process started`)
}

func (o *logifaceObserver) ProcessStopped(name string, err error) {
	if err != nil {
		o.log.Err().Str(`process`, name).Err(err).Log(`cspproc: process stopped`)
		return
	}
	o.log.Info().Str(`process`, name).Log(`cspproc: process stopped`)
}

// Default returns an Observer backed by a logiface Logger using stumpy's
// default JSON writer to os.Stderr.
func Default() Observer {
	return NewLogifaceObserver(stumpy.L.New(stumpy.L.WithStumpy()))
}
