package scroll

import "log/slog"

var logger = slog.Default()

// SetLogger replaces the logger used by controllers that have none of their
// own. A nil logger restores slog.Default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	logger = l
}

func (c *Controller) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return logger
}
