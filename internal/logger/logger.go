// Package logger writes structured logs to a rotating file under the config
// directory. Debug runs also echo to stderr.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/julianstephens/healthlit/internal/constants"
)

const (
	dirName    = "logs"
	maxSizeMB  = 10
	maxBackups = 3
	maxAgeDays = 28
)

var (
	// Logger is nil until Init; the helpers below drop messages until then.
	Logger *log.Logger

	path string
)

type Config struct {
	Debug     bool
	ConfigDir string
	RunID     string // added to every line of one process run
}

func Init(cfg Config) error {
	dir := filepath.Join(cfg.ConfigDir, dirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	path = filepath.Join(dir, constants.AppName+".log")

	var out io.Writer = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Compress:   true,
	}
	if cfg.Debug {
		out = io.MultiWriter(os.Stderr, out)
	}

	l := log.NewWithOptions(out, options(cfg.Debug))
	if cfg.RunID != "" {
		l = l.With("run", cfg.RunID)
	}
	Logger = l
	return nil
}

func options(debug bool) log.Options {
	opts := log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           log.WarnLevel,
		Prefix:          constants.AppName,
	}
	if debug {
		opts.Level = log.DebugLevel
		opts.ReportCaller = true
	}
	return opts
}

// Path returns the active log file, or "" before Init.
func Path() string {
	return path
}

func Debug(msg string, keyvals ...interface{}) { logAt(log.DebugLevel, msg, keyvals...) }

func Info(msg string, keyvals ...interface{}) { logAt(log.InfoLevel, msg, keyvals...) }

func Warn(msg string, keyvals ...interface{}) { logAt(log.WarnLevel, msg, keyvals...) }

func Error(msg string, keyvals ...interface{}) { logAt(log.ErrorLevel, msg, keyvals...) }

func logAt(level log.Level, msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Log(level, msg, keyvals...)
	}
}
