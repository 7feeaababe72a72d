package logger

import (
	"go.uber.org/zap"
)

// Log starts as a no-op so packages can log before Init (and under `go test`).
var Log *zap.SugaredLogger = zap.NewNop().Sugar()

func Init() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize zap logger: " + err.Error())
	}
	Log = logger.Sugar()
}
