package segfile

import "log/slog"

// Global logger for all segfile writers
var log = slog.Default()

// SetLogger configures the global logger
func SetLogger(l *slog.Logger) {
	log = l
}
