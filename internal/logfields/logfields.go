package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath       = "path"
	KeyFile       = "file"
	KeyLink       = "link"
	KeyResolved   = "resolved"
	KeyCount      = "count"
	KeyDurationMS = "duration_ms"
	KeyFormat     = "format"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func File(f string) slog.Attr         { return slog.String(KeyFile, f) }
func Link(l string) slog.Attr         { return slog.String(KeyLink, l) }
func Resolved(p string) slog.Attr     { return slog.String(KeyResolved, p) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Format(f string) slog.Attr       { return slog.String(KeyFormat, f) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
