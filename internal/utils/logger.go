package utils

import (
	"strings"

	"becak/internal/logger"
)

// LogEvent writes a standardized line with module/action/request_id.
// Avoid logging sensitive payload; message should be summarized.
func LogEvent(requestID, module, action, message string) {
	logger.Default().Info(message,
		logger.String("module", strings.ToUpper(module)),
		logger.String("action", action),
		logger.String("request_id", strings.TrimSpace(requestID)),
	)
}

// LogFailure is LogEvent for failed actions.
func LogFailure(requestID, module, action string, err error) {
	logger.Default().Warning("action failed",
		logger.String("module", strings.ToUpper(module)),
		logger.String("action", action),
		logger.String("request_id", strings.TrimSpace(requestID)),
		logger.Error(err),
	)
}
