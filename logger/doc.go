// Package logger wraps Uber's Zap logger behind the small structured
// logging surface used across vectorgate.
//
// Every other package in this module accepts a local Logger interface with
// the methods provided here (Info, Debug, Warn, Error, Fatal), keeping
// those packages decoupled from Zap while still producing structured JSON
// logs in production.
//
// Usage:
//
//	log := logger.NewLogger(logger.Config{Level: logger.Info, ServiceName: "vectorgate"})
//	log.Info("collection recreated", nil, map[string]interface{}{
//	    "collection": "articles",
//	    "dimension":  384,
//	})
//
// The FXModule provides the logger to an Fx application and flushes
// buffered entries on shutdown.
package logger
