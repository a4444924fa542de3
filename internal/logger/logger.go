// Package logger provides the structured logger used by the unitgen CLI.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Standard field names for consistent structured logging.
const (
	FieldQuantity    = "quantity"
	FieldFile        = "file"
	FieldCount       = "count"
	FieldRules       = "rules"
	FieldFingerprint = "fingerprint"
	FieldError       = "error"
)

// Logger is the global logger instance.
var Logger *zap.SugaredLogger

func init() {
	// No-op until Initialize is called, so library callers never log
	Logger = zap.NewNop().Sugar()
}

// Initialize sets up the global logger. Verbose lowers the level to debug;
// jsonOutput switches to the production JSON encoder. UNITGEN_LOG_LEVEL
// overrides the level when set to a valid zap level name.
func Initialize(verbose, jsonOutput bool) error {
	level := zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		level.SetLevel(zap.DebugLevel)
	}
	if env := os.Getenv("UNITGEN_LOG_LEVEL"); env != "" {
		if parsed, err := zapcore.ParseLevel(env); err == nil {
			level.SetLevel(parsed)
		}
	}

	var zapLogger *zap.Logger
	if jsonOutput {
		config := zap.NewProductionConfig()
		config.Level = level
		var err error
		zapLogger, err = config.Build()
		if err != nil {
			return err
		}
	} else {
		encoderConfig := zap.NewDevelopmentEncoderConfig()
		encoderConfig.TimeKey = ""
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapLogger = zap.New(
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(encoderConfig),
				zapcore.AddSync(os.Stderr),
				level,
			),
		)
	}

	Logger = zapLogger.Sugar()
	return nil
}

// Sync flushes buffered log entries.
func Sync() {
	_ = Logger.Sync()
}
