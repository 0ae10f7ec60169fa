package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/BrandonKowalski/travelapp/pkg/travelapp/config"
)

var (
	logPath string
	logFile *os.File

	setupOnce sync.Once
	logOutput io.Writer

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   *slog.LevelVar

	internalLoggerOnce sync.Once
	internalLogger     *slog.Logger
	internalLevelVar   *slog.LevelVar
)

// SetLogPath sets the full path for the log file, including filename.
// Parent directories are created on first use. An empty path logs to
// stdout only.
func SetLogPath(path string) {
	logPath = path
}

func setupOutput() {
	setupOnce.Do(func() {
		logOutput = os.Stdout
		if logPath == "" {
			return
		}

		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			return
		}

		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return
		}

		logFile = f
		logOutput = io.MultiWriter(os.Stdout, logFile)
	})
}

func newJSONLogger(level *slog.LevelVar) *slog.Logger {
	setupOutput()
	return slog.New(slog.NewJSONHandler(logOutput, &slog.HandlerOptions{Level: level}))
}

// GetLogger returns the application logger.
func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		levelVar = &slog.LevelVar{}
		logger = newJSONLogger(levelVar)
	})
	return logger
}

// GetInternalLogger returns the logger used by the UI plumbing itself.
func GetInternalLogger() *slog.Logger {
	internalLoggerOnce.Do(func() {
		internalLevelVar = &slog.LevelVar{}
		internalLogger = newJSONLogger(internalLevelVar).With("component", "ui")
	})
	return internalLogger
}

func SetLogLevel(level slog.Level) {
	GetLogger()
	levelVar.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	GetInternalLogger()
	internalLevelVar.Set(level)
}

func SetRawLogLevel(raw string) {
	level, ok := config.ParseLogLevel(raw)
	SetLogLevel(level)
	if !ok {
		GetInternalLogger().Warn("Unknown log level; using info", "level", raw)
	}
}

func CloseLogger() {
	if logFile != nil {
		logFile.Close()
	}
}
