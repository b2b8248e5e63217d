package observability

import (
	"github.com/vitrineimob/vitrine-api/internal/logging"
	"go.uber.org/zap"
)

// Logger returns the global logger instance. Before InitLogger runs it
// falls back to zap's no-op global so early code paths stay safe.
func Logger() *zap.Logger {
	if logging.Logger == nil {
		return zap.L()
	}
	return logging.Logger
}

// MaskEmail masks an email address for logging
func MaskEmail(email string) string {
	at := -1
	for i, r := range email {
		if r == '@' {
			at = i
			break
		}
	}
	if at <= 1 {
		return "***"
	}
	return email[:1] + "***" + email[at:]
}
