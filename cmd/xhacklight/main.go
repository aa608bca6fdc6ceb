package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/xhacklight/cmd/xhacklight/commands"
	"git.home.luguber.info/inful/xhacklight/internal/backlight"
	"git.home.luguber.info/inful/xhacklight/internal/foundation/errors"
	"git.home.luguber.info/inful/xhacklight/internal/logfields"
	"git.home.luguber.info/inful/xhacklight/internal/version"
)

// logLevel is the slog level name, set at build time:
// go build -ldflags "-X main.logLevel=debug".
var logLevel = "warn"

func main() {
	os.Exit(run(os.Args[1:], backlight.DefaultPath, os.Stdout, os.Stderr))
}

// run executes one invocation against the backing file at devicePath and
// returns the process exit code.
func run(args []string, devicePath string, stdout, stderr io.Writer) int {
	level := slog.LevelWarn
	levelErr := level.UnmarshalText([]byte(logLevel))
	if levelErr != nil {
		level = slog.LevelWarn
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	if levelErr != nil {
		logger.Warn("Unknown log level, using warn", slog.String("level", logLevel), logfields.Error(levelErr))
	}
	logger.Debug("Starting xhacklight", logfields.Version(version.String()))

	adapter := errors.NewCLIErrorAdapter(logger)

	var cli commands.CLI
	parser, err := kong.New(&cli,
		kong.Name("xhacklight"),
		kong.Description("Read or adjust the display backlight brightness."),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		return adapter.Report(stderr, errors.WrapError(err, errors.CategoryInternal, "could not build command line").Build())
	}

	// "--" keeps tokens like -200 positional instead of short flags.
	ctx, err := parser.Parse(append([]string{"--"}, args...))
	if err != nil {
		return adapter.Report(stderr, errors.WrapError(err, errors.CategoryInternal, "could not parse command line").Build())
	}

	err = ctx.Run(&commands.Global{
		Logger: logger,
		Device: backlight.NewStore(devicePath, logger),
		Stdout: stdout,
	})
	return adapter.Report(stderr, err)
}
