// Package logger provides structured logging for enginekit
// using zerolog.
//
// It supports multiple output formats (JSON, console), log level
// configuration, and component-scoped loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("engine.loader")
//	log.Info("engine ready", logger.Fields(logger.FieldProvider, "postgresql"))
package logger
