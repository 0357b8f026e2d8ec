// Package logging is a thin wrapper of zap logging library.
//
// Log output goes to stderr, so that decoded documents on stdout stay machine readable.
// SIGTRAN_LOG_ENCODING selects "json" (default) or "console" encoding.
// SIGTRAN_LOG and SIGTRAN_LOG_<pkg> select log levels, see PkgLevel.SetLevel.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newEncoder(encoding string) zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if encoding == "console" {
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewConsoleEncoder(cfg)
	}
	return zapcore.NewJSONEncoder(cfg)
}

var root = zap.New(zapcore.NewCore(
	newEncoder(os.Getenv("SIGTRAN_LOG_ENCODING")),
	zapcore.Lock(os.Stderr),
	zap.DebugLevel,
))

// Named creates a named logger without initialization.
func Named(pkg string) *zap.Logger {
	return root.Named(pkg)
}

// New creates a logger initialized with configured log level.
//
// By codebase convention, this should appear in the same .go file as the package docstring:
//
//	var logger = logging.New("Foo")
func New(pkg string) *zap.Logger {
	return Named(pkg).WithOptions(zap.IncreaseLevel(GetLevel(pkg).al))
}
