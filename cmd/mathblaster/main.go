package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Dennis-J-Carroll/Simple-Math-Game-o1/internal/app"
	"github.com/Dennis-J-Carroll/Simple-Math-Game-o1/internal/audio"
	"github.com/Dennis-J-Carroll/Simple-Math-Game-o1/internal/config"
	"github.com/Dennis-J-Carroll/Simple-Math-Game-o1/internal/game"
	"github.com/Dennis-J-Carroll/Simple-Math-Game-o1/internal/logger"
)

func main() {
	// .env is optional, real env vars win either way
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zl.Sync() //nolint:errcheck

	sound := audio.New(audio.Config{
		Enabled:    cfg.Audio.Enabled,
		SampleRate: cfg.Audio.SampleRate,
		Volume:     cfg.Audio.Volume,
	}, zl)

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	session := game.NewSession(r, sound, zl)

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle("Math Blaster")
	zl.Info("starting", zap.Int("width", cfg.Window.Width), zap.Int("height", cfg.Window.Height))

	if err := ebiten.RunGame(app.New(session, zl)); err != nil {
		zl.Fatal("game loop exited", zap.Error(err))
	}
}
