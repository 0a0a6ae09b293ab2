// Package logger builds the zap logger used across the service.
package logger

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	DebugLevel = iota - 1
	InfoLevel
	WarnLevel
	ErrorLevel
)

type Configuration struct {
	Level      int
	TimeFormat string
}

func (c Configuration) Validate() error {
	if c.Level < DebugLevel || c.Level > ErrorLevel {
		return errors.New("log level must be between debug (-1) and error (2)")
	}
	if c.TimeFormat == "" {
		return errors.New("log time format must not be empty")
	}
	return nil
}

func New(cfg Configuration) (*zap.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Format(cfg.TimeFormat))
	}

	zapConfig := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapcore.Level(cfg.Level)),
		Encoding:         "json",
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}
	return zapConfig.Build()
}
