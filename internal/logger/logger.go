package logger

import "go.uber.org/zap"

// New builds the process logger. Production config outside development so
// log aggregation gets JSON.
func New(service, env string) *zap.Logger {
	var log *zap.Logger
	var err error
	if env == "development" {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		log = zap.NewNop()
	}
	return log.With(zap.String("service", service))
}
