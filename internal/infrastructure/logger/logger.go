package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	usecasecontract "github.com/PaulBilal/Edunova-School-System/internal/usecase/contract"
)

// ZapLogger adapts a zap sugared logger to IAppLogger.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

var _ usecasecontract.IAppLogger = (*ZapLogger)(nil)

// NewZapLogger builds a JSON production logger, or a console logger with
// debug output when env is "development".
func NewZapLogger(env string) (*ZapLogger, error) {
	var (
		base *zap.Logger
		err  error
	)
	if env == "development" {
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		base, err = cfg.Build()
	} else {
		base, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return &ZapLogger{sugar: base.Sugar()}, nil
}

// NewNop returns a logger that discards everything.
func NewNop() *ZapLogger {
	return &ZapLogger{sugar: zap.NewNop().Sugar()}
}

// Zap exposes the structured logger for middleware that logs fields.
func (l *ZapLogger) Zap() *zap.Logger {
	return l.sugar.Desugar()
}

// Named returns a child logger with the given name segment.
func (l *ZapLogger) Named(name string) *ZapLogger {
	return &ZapLogger{sugar: l.sugar.Named(name)}
}

func (l *ZapLogger) Debugf(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}

func (l *ZapLogger) Infof(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

func (l *ZapLogger) Warnf(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

func (l *ZapLogger) Errorf(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

// Fatalf logs a fatal message and exits.
func (l *ZapLogger) Fatalf(format string, args ...interface{}) {
	l.sugar.Fatalf(format, args...)
}

// Sync flushes buffered entries.
func (l *ZapLogger) Sync() error {
	return l.sugar.Sync()
}
