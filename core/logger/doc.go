// Package logger builds the zap logger used by every command and feature.
//
// Level and encoding come from the log section of the configuration:
//   - level: debug, info, warn or error
//   - format: json for deployments, console for local runs and CLI errors
//
// Request handlers derive a child logger with WithRayID so every line written
// while serving a request carries the X-Ray-ID assigned by the rayid middleware.
//
//	logg, err := logger.New(&cfg.Log)
//	l := logger.WithRayID(logg, c)
//	l.Warn("Inventory load failed", zap.Error(err))
package logger
