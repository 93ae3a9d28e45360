package lib

import (
	"os"

	"go.uber.org/zap"
)

var Log *zap.SugaredLogger

// InitLogger sets the global logger. Production config unless APP_ENV=dev.
func InitLogger() {
	var logger *zap.Logger
	var err error

	if os.Getenv("APP_ENV") == "dev" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}

	Log = logger.Sugar()
}

func init() {
	// Tests and helpers may touch Log before main wires it up.
	if Log == nil {
		Log = zap.NewNop().Sugar()
	}
}
