package logger

// Logger provides a standardized logging interface for the muse-go client.
// It defines methods for different log levels (Debug, Info, Warn, Error)
// so hosts can plug in their preferred logging implementation
// (e.g., logrus, zap, standard log) or use the provided Noop logger to
// disable logging entirely.
//
// The logger is used throughout the client for:
// - beacon URL construction and payload debugging
// - transport (delivery) failures, which are never surfaced to callers
// - catalog-forwarding skips and errors
//
// Usage Example:
//
//	// Using with a custom logger implementation
//	client := muse_go.NewClient(clientId, mrids, muse_go.WithLogger(myLogger))
//
//	// Disable logging entirely
//	client := muse_go.NewClient(clientId, mrids, muse_go.WithLogger(&logger.Noop{}))
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}
