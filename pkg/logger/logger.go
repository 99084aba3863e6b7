package logger

import (
	"roamly/pkg/config"

	"go.uber.org/zap"
)

var log *zap.Logger = zap.NewNop()

// Init builds the global logger. Production gets structured JSON,
// development gets the console encoder.
func Init(cfg *config.Config) error {
	var (
		l   *zap.Logger
		err error
	)
	if cfg.IsProduction() {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return err
	}
	log = l
	return nil
}

func L() *zap.Logger {
	return log
}

func Sync() {
	_ = log.Sync()
}
