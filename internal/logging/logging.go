// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging configures the shared diagnostic logger. All stages log
// through the package-level sugared logger; report output goes to stdout,
// so the logger always writes to stderr.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// S is the package-level logger, safe to use before Init (it starts as a
// no-op and Init replaces it).
var S *zap.SugaredLogger = zap.NewNop().Sugar()

// Init builds the shared logger. With debug true the stages trace requests,
// fetch batches, and row assembly; otherwise only warnings and errors are
// emitted.
func Init(debug bool) *zap.SugaredLogger {
	level := zapcore.WarnLevel
	if debug {
		level = zapcore.DebugLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(zapcore.Lock(os.Stderr)),
		level,
	)

	S = zap.New(core).Sugar()
	return S
}

// Close flushes buffered log entries. Sync errors on stderr are expected on
// some platforms and are ignored.
func Close() {
	_ = S.Sync()
}
