// Package logging builds the process-wide zap logger.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the global logger instance
var Logger *zap.Logger

// Options selects the logger flavour.
type Options struct {
	Debug      bool // development encoder, debug level
	Verbose    bool // info level instead of warn
	AppName    string
	AppVersion string
}

// Setup builds the logger described by opts, installs it as the zap global
// and returns it. On failure an example logger is installed and the build
// error is returned.
func Setup(opts Options) (*zap.Logger, error) {
	var err error
	var cfg zap.Config

	if opts.Debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		// Progress goes to stdout; keep stderr quiet unless asked.
		level := zapcore.WarnLevel
		if opts.Verbose {
			level = zapcore.InfoLevel
		}
		cfg.Level = zap.NewAtomicLevelAt(level)
	}

	// Add default fields
	cfg.InitialFields = map[string]interface{}{
		"appName":    opts.AppName,
		"appVersion": opts.AppVersion,
	}

	Logger, err = cfg.Build()
	if err != nil {
		Logger = zap.NewExample()
		zap.ReplaceGlobals(Logger)
		return Logger, err
	}

	zap.ReplaceGlobals(Logger)
	return Logger, nil
}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
