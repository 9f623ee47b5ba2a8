package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Mode selects where log output goes.
type Mode string

const (
	ModeConsole Mode = "console" // human-readable output on stderr
	ModeFile    Mode = "file"    // rotated JSON file
	ModeNone    Mode = "none"    // discard everything
)

// Config describes the process logger.
type Config struct {
	Mode     Mode
	Filename string
}

// New builds the logger for the requested mode.
func New(cfg Config) (*zap.Logger, error) {
	switch cfg.Mode {
	case ModeConsole, "":
		zcfg := zap.NewDevelopmentConfig()
		zcfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		logger, err := zcfg.Build()
		if err != nil {
			return nil, fmt.Errorf("failed to create console logger: %w", err)
		}
		return logger, nil

	case ModeFile:
		filename := cfg.Filename
		if filename == "" {
			filename = "logs/vitality.log"
		}
		if dir := filepath.Dir(filename); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create log directory: %w", err)
			}
		}

		encoderConfig := zap.NewProductionEncoderConfig()
		encoderConfig.TimeKey = "timestamp"
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			zapcore.AddSync(&lumberjack.Logger{
				Filename: filename, MaxSize: 100, MaxAge: 28, Compress: true,
			}),
			zap.InfoLevel,
		)
		return zap.New(core), nil

	case ModeNone:
		return zap.NewNop(), nil

	default:
		return nil, fmt.Errorf("invalid log mode: %s", cfg.Mode)
	}
}
