//nolint:goprintffuncname
package sql

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type LoggerAdaptorConfig struct {
	SlowThreshold             time.Duration
	IgnoreRecordNotFoundError bool
}

// loggerAdaptor routes gorm logging into logrus.
type loggerAdaptor struct {
	logger *logrus.Logger
	config LoggerAdaptorConfig
}

//nolint:ireturn
func NewLoggerAdaptor(l *logrus.Logger, cfg LoggerAdaptorConfig) logger.Interface {
	return &loggerAdaptor{logger: l, config: cfg}
}

// LogMode is a no-op, the level is taken from the logrus logger.
//
//nolint:ireturn
func (l *loggerAdaptor) LogMode(_ logger.LogLevel) logger.Interface {
	return l
}

const callerSearchDepth = 15

// entry returns a log entry annotated with the first caller outside of gorm.
func (l *loggerAdaptor) entry(ctx context.Context) *logrus.Entry {
	entry := l.logger.WithContext(ctx).WithField("component", "store")

	pcs := make([]uintptr, callerSearchDepth)
	frames := runtime.CallersFrames(pcs[:runtime.Callers(3, pcs)])

	for {
		frame, more := frames.Next()
		if !strings.HasPrefix(frame.Function, "gorm.io/") && !strings.Contains(frame.Function, "loggerAdaptor") {
			return entry.WithField("caller", fmt.Sprintf("%s:%d", frame.File, frame.Line))
		}

		if !more {
			return entry
		}
	}
}

func (l *loggerAdaptor) Info(ctx context.Context, format string, args ...interface{}) {
	l.entry(ctx).Infof(format, args...)
}

func (l *loggerAdaptor) Warn(ctx context.Context, format string, args ...interface{}) {
	l.entry(ctx).Warnf(format, args...)
}

func (l *loggerAdaptor) Error(ctx context.Context, format string, args ...interface{}) {
	l.entry(ctx).Errorf(format, args...)
}

// Trace logs each statement: failures at error level, slow statements at warn level
// and everything else at debug level.
func (l *loggerAdaptor) Trace(
	ctx context.Context,
	begin time.Time,
	fc func() (sql string, rowsAffected int64),
	err error,
) {
	elapsed := time.Since(begin)

	var level logrus.Level

	switch {
	case err != nil && !(l.config.IgnoreRecordNotFoundError && errors.Is(err, gorm.ErrRecordNotFound)):
		level = logrus.ErrorLevel
	case l.config.SlowThreshold > 0 && elapsed > l.config.SlowThreshold:
		level = logrus.WarnLevel
	default:
		level = logrus.DebugLevel
	}

	if !l.logger.IsLevelEnabled(level) {
		return
	}

	sql, rows := fc()
	entry := l.entry(ctx).WithFields(logrus.Fields{
		"elapsed": elapsed.String(),
		"sql":     sql,
	})

	if rows >= 0 {
		entry = entry.WithField("rows", rows)
	}

	switch level {
	case logrus.ErrorLevel:
		entry.WithError(err).Error("SQL error")
	case logrus.WarnLevel:
		entry.Warnf("SLOW SQL >= %v", l.config.SlowThreshold)
	default:
		entry.Debug("SQL trace")
	}
}
