package utils

import (
	"os"

	"go.uber.org/zap"
)

// SetupLogger loads the given dotenv files and returns a logger for the ENV
// they leave in the environment. The process environment wins over .env.
func SetupLogger(files ...string) (*zap.Logger, error) {
	bootLogger, err := NewLogger(os.Getenv("ENV"))
	if err != nil {
		return nil, err
	}
	LoadEnv(bootLogger, files...)
	_ = bootLogger.Sync()

	return NewLogger(os.Getenv("ENV"))
}
