package directive

import (
	"fmt"
	"io"
	"log/slog"

	"git.home.luguber.info/inful/xhacklight/internal/brightness"
	"git.home.luguber.info/inful/xhacklight/internal/logfields"
)

// Device is a brightness backing store. *backlight.Store satisfies it.
type Device interface {
	Read() (brightness.Level, error)
	Write(brightness.Level) error
}

// Executor applies parsed actions to a device.
type Executor struct {
	dev    Device
	out    io.Writer
	logger *slog.Logger
}

// NewExecutor returns an executor that prints query results to out.
func NewExecutor(dev Device, out io.Writer, logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{dev: dev, out: out, logger: logger}
}

// Run performs the action. A query prints the current brightness followed by a newline,
// anything else goes through Apply.
func (e *Executor) Run(a Action) error {
	if !a.Query {
		return e.Apply(a.Directive)
	}

	current, err := e.dev.Read()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(e.out, current)
	return err
}

// Apply reads the device only when d depends on the current level, then
// writes the computed target. At most one read and one write are issued.
func (e *Executor) Apply(d Directive) error {
	var current brightness.Level
	if d.NeedsCurrent() {
		var err error
		if current, err = e.dev.Read(); err != nil {
			return err
		}
	}

	target := d.Target(current)
	e.logger.Debug("Applying directive",
		logfields.Directive(d.String()),
		logfields.Brightness(uint32(current)),
		logfields.Target(uint32(target)))

	return e.dev.Write(target)
}
