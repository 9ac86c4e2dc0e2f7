// Package logging configures the process-wide zap logger.
package logging

import (
	"go.uber.org/zap"
)

// Logger is the global logger instance, populated by Setup.
var Logger *zap.Logger

// Setup builds the global logger. Debug mode switches to the development
// config with console encoding.
func Setup(debug bool, appName, appVersion string) error {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}

	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	logger, err := cfg.Build()
	if err != nil {
		return err
	}

	Logger = logger
	zap.ReplaceGlobals(Logger)
	return nil
}
