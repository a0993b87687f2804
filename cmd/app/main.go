package main

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"

	"github.com/avelichko/wordbattle/internal/app"
	"github.com/avelichko/wordbattle/internal/config"
)

func main() {
	slog.SetDefault(slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level: slog.LevelDebug,
	})))

	app.Go(config.Load())
}
