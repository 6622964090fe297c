package mpstream

import "log/slog"

// logCleanupError reports a spill-file cleanup failure through logger
// if one was configured, swallowing the error otherwise. The parser
// never logs anything else; every other condition is surfaced to the
// caller as an error value.
func logCleanupError(logger *slog.Logger, path string, err error) {
	if logger == nil || err == nil {
		return
	}
	logger.Error("mpstream: failed to remove spill file", "path", path, "error", err)
}
