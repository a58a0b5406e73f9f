package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logFileMaxSizeMB  = 10
	logFileMaxBackups = 3
	logFileMaxAgeDays = 28
)

type rootCmdConfig struct {
	verbose    bool
	logFile    string
	logger     *zap.Logger
	ctx        context.Context
	cancelFunc context.CancelFunc
}

// Logger returns the logger commands write to, building it on first use.
// Debug entries are only written when verbose is set.
func (rc *rootCmdConfig) Logger() *zap.Logger {
	if rc.logger == nil {
		rc.logger = newLogger(rc.verbose, rc.logFile)
	}
	return rc.logger
}

func (rc *rootCmdConfig) Logf(format string, a ...interface{}) {
	rc.Logger().Sugar().Debugf(format, a...)
}

func (rc *rootCmdConfig) Warnf(format string, a ...interface{}) {
	rc.Logger().Sugar().Warnf(format, a...)
}

func (rc *rootCmdConfig) Sync() {
	if rc.logger != nil {
		rc.logger.Sync()
	}
}

// Context returns the context commands run reads and writes under. It is
// cancelled on SIGINT or SIGTERM, or when ContextCancelFunc is called.
func (rc *rootCmdConfig) Context() context.Context {
	rc.setContextAndCancelFunc()
	return rc.ctx
}

func (rc *rootCmdConfig) ContextCancelFunc() context.CancelFunc {
	rc.setContextAndCancelFunc()
	return rc.cancelFunc
}

func (rc *rootCmdConfig) setContextAndCancelFunc() {
	if rc.ctx == nil {
		rc.ctx, rc.cancelFunc = signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	}
}

func newLogger(verbose bool, logFile string) *zap.Logger {
	level := zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		level.SetLevel(zapcore.DebugLevel)
	}
	if logFile == "" {
		encoderConfig := zap.NewDevelopmentEncoderConfig()
		encoderConfig.TimeKey = ""
		core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.Lock(os.Stderr), level)
		return zap.New(core)
	}
	w := zapcore.AddSync(&lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    logFileMaxSizeMB,
		MaxBackups: logFileMaxBackups,
		MaxAge:     logFileMaxAgeDays,
	})
	core := zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), w, level)
	return zap.New(core)
}
