package common

import (
	"os"

	"github.com/saurabh/starter-templates/pkg/logger"
)

// IsQuietMode checks if quiet mode is enabled via environment variable
func IsQuietMode() bool {
	return os.Getenv("QUIET_BUILD") == "1" || os.Getenv("QUIET_BUILD") == "true"
}

// LogInfo logs an info message unless quiet mode is enabled
func LogInfo(format string, v ...interface{}) {
	if !IsQuietMode() {
		logger.Infof(format, v...)
	}
}

// LogWarning always logs a warning message
func LogWarning(format string, v ...interface{}) {
	logger.Warnf("⚠️  "+format, v...)
}

// LogSuccess always logs a success message
func LogSuccess(format string, v ...interface{}) {
	logger.Infof("✅ "+format, v...)
}
