package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	log  *zap.Logger
	once sync.Once
)

// Init builds the process-wide production logger. Calling it again is a no-op.
func Init() error {
	var err error
	once.Do(func() {
		log, err = zap.NewProduction()
	})
	return err
}

// L returns the process-wide logger, or a no-op logger before Init.
func L() *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}

func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}
