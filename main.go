package main

import (
	"github.com/joho/godotenv"

	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/app"
	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/config"
)

func main() {
	// Optional .env next to the binary for the COLORPICKER_* overrides.
	_ = godotenv.Load()

	cfgPath, pathErr := config.DefaultPath()
	cfg, loadErr := config.Load(cfgPath)

	logger := NewLogger(cfg.Debug)
	if pathErr != nil {
		logger.Warn("config path unavailable; settings will not persist", "error", pathErr)
	}
	if loadErr != nil {
		logger.Warn("config load failed; using defaults", "error", loadErr, "path", cfgPath)
	}

	application := app.NewApp("Color Picker", 420, 560, cfg, cfgPath, logger)
	application.Start()
}
