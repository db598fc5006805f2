// Package logger builds the application's zap logger.
//
// The level and encoding come from Config. The debug level switches to zap's
// development defaults; any other level uses the production defaults. The
// console format colors level names and drops stack traces.
//
// Request handlers attach the ray id set by the rayid middleware:
//
//	l := logger.WithRayID(log, c)
//	l.Error("refresh failed", zap.Error(err))
package logger
