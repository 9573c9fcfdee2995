// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of expgen

package logging

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

var slogHandlerOpts = &slog.HandlerOptions{
	AddSource:   false,
	Level:       slog.LevelInfo,
	ReplaceAttr: replaceAttrFnWithoutTimestamp,
}

// DefaultSlogLogger is the process-wide logger. It is overwritten once
// SetupLogging is called.
var DefaultSlogLogger = slog.New(slog.NewTextHandler(
	os.Stderr,
	slogHandlerOpts,
))

func slogLevel(l logrus.Level) slog.Level {
	switch l {
	case logrus.DebugLevel, logrus.TraceLevel:
		return slog.LevelDebug
	case logrus.InfoLevel:
		return slog.LevelInfo
	case logrus.WarnLevel:
		return slog.LevelWarn
	case logrus.ErrorLevel, logrus.PanicLevel, logrus.FatalLevel:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetupLogging reconfigures the default logger. The level string is parsed
// with logrus semantics; an unparsable level falls back to info.
func SetupLogging(level string, debug bool) {
	logrusLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logrusLevel = logrus.InfoLevel
	}
	if debug {
		logrusLevel = logrus.DebugLevel
	}

	opts := *slogHandlerOpts
	opts.Level = slogLevel(logrusLevel)
	if opts.Level == slog.LevelDebug {
		opts.AddSource = true
	}

	DefaultSlogLogger = slog.New(slog.NewTextHandler(os.Stderr, &opts))
}

func replaceAttrFn(groups []string, a slog.Attr) slog.Attr {
	switch a.Key {
	case slog.TimeKey:
		return slog.String(slog.TimeKey, a.Value.Time().Format(time.RFC3339))
	case slog.LevelKey:
		// Lower-case the log level
		return slog.Attr{
			Key:   a.Key,
			Value: slog.StringValue(strings.ToLower(a.Value.String())),
		}
	}
	return a
}

func replaceAttrFnWithoutTimestamp(groups []string, a slog.Attr) slog.Attr {
	switch a.Key {
	case slog.TimeKey:
		// Drop timestamps
		return slog.Attr{}
	default:
		return replaceAttrFn(groups, a)
	}
}

// Fatal logs msg at error level and exits. Not recoverable.
func Fatal(logger *slog.Logger, msg string, args ...any) {
	logger.Error(msg, args...)
	os.Exit(-1)
}
