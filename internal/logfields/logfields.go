package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyStage      = "stage"
	KeyDurationMS = "duration_ms"
	KeyPath       = "path"
	KeyTheme      = "theme"
	KeyPlugin     = "plugin"
	KeyFormat     = "format"
	KeySnapshot   = "snapshot"
	KeyBytes      = "bytes"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr { return slog.String(KeyRunID, id) }
func Stage(name string) slog.Attr { return slog.String(KeyStage, name) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Path(p string) slog.Attr { return slog.String(KeyPath, p) }
func Theme(name string) slog.Attr { return slog.String(KeyTheme, name) }
func Plugin(name string) slog.Attr { return slog.String(KeyPlugin, name) }
func Format(f string) slog.Attr { return slog.String(KeyFormat, f) }
func Snapshot(hash string) slog.Attr { return slog.String(KeySnapshot, hash) }
func Bytes(n int) slog.Attr { return slog.Int(KeyBytes, n) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
