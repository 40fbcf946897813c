package logger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type gormWriter struct {
	l zerolog.Logger
}

func (w gormWriter) Printf(format string, args ...any) {
	w.l.Warn().Msg(fmt.Sprintf(format, args...))
}

// gormLogger drops duplicate-key errors. The stores turn them into
// ErrDuplicatePair and the caller decides what they mean.
type gormLogger struct {
	gormlogger.Interface
}

func (g gormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	return gormLogger{g.Interface.LogMode(level)}
}

func (g gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		err = nil
	}
	g.Interface.Trace(ctx, begin, fc, err)
}

// Gorm returns a gorm logger that writes slow queries and errors through l.
// Lookups that find nothing are not errors and are not logged.
func Gorm(l zerolog.Logger) gormlogger.Interface {
	return gormLogger{gormlogger.New(
		gormWriter{l: l.With().Str("component", "gorm").Logger()},
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)}
}
