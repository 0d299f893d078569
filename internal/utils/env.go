package utils

import (
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func LoadEnv(logger *zap.Logger, files ...string) {
	if err := godotenv.Load(files...); err != nil {
		logger.Warn("ENV file not found or failed to load, using process environment")
	} else {
		logger.Info("ENV file loaded successfully")
	}
}
