// Package logger wraps zerolog with a small structured-logging API shared by
// all regkit packages.
//
// Components receive a *Logger and tag it with their name:
//
//	log := logger.NewDefault("order-service").WithComponent("registry")
//	log.Info("service registered", logger.Fields("service", name, "id", id))
//
// A process-wide global logger is available through the package-level
// functions for code that is not wired with an explicit instance.
package logger
