package logger

import (
	"go.uber.org/zap"

	"github.com/Dennis-J-Carroll/Simple-Math-Game-o1/internal/config"
)

func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Env == "production" {
		return zap.NewProduction()
	}

	return zap.NewDevelopment()
}
