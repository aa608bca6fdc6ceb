package commands

import (
	"io"
	"log/slog"

	"git.home.luguber.info/inful/xhacklight/internal/directive"
)

// Global carries the process-wide dependencies bound into Run.
type Global struct {
	Logger *slog.Logger
	Device directive.Device
	Stdout io.Writer
}

// CLI is the whole command-line grammar: at most one adjustment token.
// Arity is checked by directive.Parse so that extra arguments are a usage
// error rather than a kong parse error.
type CLI struct {
	Args []string `arg:"" optional:"" sep:"none" name:"adjustment" help:"One of =N, +N, -N, inc or dec. Omit to print the current brightness."`
}

// Run interprets the arguments and applies them to the device.
func (c *CLI) Run(g *Global) error {
	action, err := directive.Parse(c.Args)
	if err != nil {
		return err
	}
	return directive.NewExecutor(g.Device, g.Stdout, g.Logger).Run(action)
}
