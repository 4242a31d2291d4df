package cmd

import (
	"github.com/klwxsrx/loopon-client/pkg/env"
	"github.com/klwxsrx/loopon-client/pkg/log"
)

var logLevelMap = map[string]log.Level{
	"disabled": log.LevelDisabled,
	"debug":    log.LevelDebug,
	"info":     log.LevelInfo,
	"warn":     log.LevelWarn,
	"error":    log.LevelError,
}

var logFormatMap = map[string]log.Format{
	"json": log.FormatJSON,
	"text": log.FormatText,
}

// InitLogger reads LOG_LEVEL and LOG_FORMAT, unknown values fall back to info and json.
func InitLogger(opts ...log.Option) log.Logger {
	logLevel := log.LevelInfo
	if levelStr, err := env.Parse[string]("LOG_LEVEL"); err == nil {
		if level, ok := logLevelMap[levelStr]; ok {
			logLevel = level
		}
	}

	if formatStr, err := env.Parse[string]("LOG_FORMAT"); err == nil {
		if format, ok := logFormatMap[formatStr]; ok {
			opts = append([]log.Option{log.WithFormat(format)}, opts...)
		}
	}

	return log.New(logLevel, opts...)
}
