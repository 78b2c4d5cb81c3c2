package utils

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewApplicationLogger builds the console logger for user-facing diagnostics.
// Warnings share the terminal with tree output, so every field except the
// message itself is stripped and lines go to standard error.
func NewApplicationLogger() (*zap.Logger, error) {
	encoderConfig := zapcore.EncoderConfig{
		MessageKey:  "message",
		LineEnding:  zapcore.DefaultLineEnding,
		EncodeLevel: zapcore.CapitalLevelEncoder,
	}
	loggerConfig := zap.Config{
		Level:             zap.NewAtomicLevelAt(zapcore.WarnLevel),
		Encoding:          "console",
		EncoderConfig:     encoderConfig,
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
		DisableCaller:     true,
		DisableStacktrace: true,
	}
	return loggerConfig.Build()
}
