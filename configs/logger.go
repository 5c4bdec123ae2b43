package configs

import (
	"sync"

	"go.uber.org/zap"
)

var (
	once     sync.Once
	instance *zap.Logger
)

func Logger() *zap.Logger {
	once.Do(func() {
		cfg := zap.NewProductionConfig()
		cfg.OutputPaths = []string{"stdout"}
		logger, err := cfg.Build()
		if err != nil {
			panic(err)
		}
		instance = logger
	})
	return instance
}
