package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath       = "path"
	KeyBrightness = "brightness"
	KeyTarget     = "target"
	KeyDirective  = "directive"
	KeyClamped    = "clamped"
	KeyVersion    = "version"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr       { return slog.String(KeyPath, p) }
func Brightness(v uint32) slog.Attr { return slog.Uint64(KeyBrightness, uint64(v)) }
func Target(v uint32) slog.Attr     { return slog.Uint64(KeyTarget, uint64(v)) }
func Directive(d string) slog.Attr  { return slog.String(KeyDirective, d) }
func Clamped(c bool) slog.Attr      { return slog.Bool(KeyClamped, c) }
func Version(v string) slog.Attr    { return slog.String(KeyVersion, v) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
