// Package logging provides the process-wide structured logger.
//
// A TUI owns stdout, so logs go to a rotated file under the user's state
// directory. Until Init is called, L returns a no-op logger.
package logging

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	envMode  = "DELAYTEXT_ENV"
	envLevel = "LOG_LEVEL"
)

var (
	logger *Logger
	raw    *zap.Logger

	noopLogger = &Logger{zap.NewNop().Sugar()}

	atomicLevel zap.AtomicLevel
)

// Logger wraps zap's SugaredLogger.
type Logger struct {
	*zap.SugaredLogger
}

// With adds structured fields to the logger and returns a new instance.
func (l *Logger) With(args ...interface{}) *Logger {
	if l == nil {
		return noopLogger
	}
	return &Logger{l.SugaredLogger.With(args...)}
}

// L returns the global logger or a no-op fallback if uninitialized.
func L() *Logger {
	if logger == nil {
		return noopLogger
	}
	return logger
}

// Init initializes the global logger and returns the log file path.
//
// DELAYTEXT_ENV=dev selects a console encoder writing app-debug.log;
// anything else writes JSON to app.log. LOG_LEVEL sets the level; debug
// forces the debug level regardless.
func Init(appName string, debug bool) string {
	mode := detectMode()
	logPath := selectLogPath(appName, mode)

	level := detectLogLevel()
	if debug {
		level = zap.DebugLevel
	}
	atomicLevel = zap.NewAtomicLevelAt(level)

	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     7, // days
		Compress:   true,
	})

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	var encoder zapcore.Encoder
	if mode == "dev" {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, writer, atomicLevel)
	raw = zap.New(core, zap.AddCaller())
	logger = &Logger{raw.Sugar()}

	logger.Infow("logger initialized", "mode", mode, "path", logPath, "level", level.String())
	return logPath
}

// Sync flushes any buffered log entries.
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}

// InitTest creates a lightweight logger for tests that logs to stdout.
func InitTest() {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	cfg.OutputPaths = []string{"stdout"}
	raw, _ = cfg.Build(zap.AddCaller())
	logger = &Logger{raw.Sugar()}
}

// SetLevel changes the log level at runtime.
func SetLevel(level zapcore.Level) {
	if atomicLevel != (zap.AtomicLevel{}) {
		atomicLevel.SetLevel(level)
	}
}

func detectMode() string {
	switch strings.ToLower(os.Getenv(envMode)) {
	case "dev", "development":
		return "dev"
	default:
		return "prod"
	}
}

// selectLogPath picks a standard file location for logs.
func selectLogPath(appName, mode string) string {
	fileName := "app.log"
	if mode == "dev" {
		fileName = "app-debug.log"
	}

	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		path := filepath.Join(xdg, appName)
		_ = os.MkdirAll(path, 0o755)
		return filepath.Join(path, fileName)
	}

	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".local", "state", appName)
		_ = os.MkdirAll(path, 0o755)
		return filepath.Join(path, fileName)
	}

	path := filepath.Join(os.TempDir(), appName)
	_ = os.MkdirAll(path, 0o755)
	return filepath.Join(path, fileName)
}

func detectLogLevel() zapcore.Level {
	switch strings.ToLower(os.Getenv(envLevel)) {
	case "debug":
		return zap.DebugLevel
	case "info":
		return zap.InfoLevel
	case "warn", "warning":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		if detectMode() == "dev" {
			return zap.DebugLevel
		}
		return zap.InfoLevel
	}
}
