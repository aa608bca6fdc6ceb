// Package backlight reads and writes the brightness pseudo-file exposed by
// the kernel backlight driver.
package backlight

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"git.home.luguber.info/inful/xhacklight/internal/brightness"
	"git.home.luguber.info/inful/xhacklight/internal/foundation/errors"
	"git.home.luguber.info/inful/xhacklight/internal/logfields"
)

// DefaultPath is the intel_backlight brightness control.
// Other panels can be targeted at build time:
// go build -ldflags "-X git.home.luguber.info/inful/xhacklight/internal/backlight.DefaultPath=/sys/class/backlight/amdgpu_bl0/brightness".
var DefaultPath = "/sys/class/backlight/intel_backlight/brightness"

// Store is the brightness backing file. Each Read or Write touches the file
// exactly once; there is no locking and the last writer wins.
type Store struct {
	path   string
	logger *slog.Logger
}

// NewStore returns a store for the backing file at path.
func NewStore(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{path: path, logger: logger}
}

// Read returns the current brightness. The value is not bounds-checked.
// Surrounding whitespace and a single leading '+' are accepted.
func (s *Store) Read() (brightness.Level, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return 0, errors.FileSystemError(err, "read", s.path).Build()
	}

	text := string(raw)
	digits := strings.TrimPrefix(strings.TrimSpace(text), "+")
	v, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return 0, errors.ParseError(err, s.path, text).Build()
	}

	s.logger.Debug("Read brightness", logfields.Path(s.path), logfields.Brightness(uint32(v)))
	return brightness.Level(v), nil
}

// Write clamps l to brightness.Max and replaces the file content with its
// decimal form.
func (s *Store) Write(l brightness.Level) error {
	clamped := brightness.Clamp(l)
	if err := os.WriteFile(s.path, []byte(strconv.FormatUint(uint64(clamped), 10)), 0o644); err != nil {
		return errors.FileSystemError(err, "write", s.path).Build()
	}

	s.logger.Debug("Wrote brightness",
		logfields.Path(s.path),
		logfields.Brightness(uint32(clamped)),
		logfields.Clamped(clamped != l))
	return nil
}
