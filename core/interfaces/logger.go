package interfaces

// Logger defines the interface for logging throughout the application.
// This abstraction allows for different logging implementations (logrus,
// zap, etc.) while maintaining a consistent interface.
//
// Example usage:
//
//	logger.Info("Validated record", map[string]interface{}{
//		"index": 3,
//		"status": "approved",
//	})
type Logger interface {
	// Debug logs detailed troubleshooting information.
	Debug(msg string, fields map[string]interface{})

	// Info logs general informational messages.
	Info(msg string, fields map[string]interface{})

	// Warn logs potential issues that don't prevent operation.
	Warn(msg string, fields map[string]interface{})

	// Error logs failures that need attention.
	Error(msg string, fields map[string]interface{})
}
