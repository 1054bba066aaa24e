package logger

import (
	"log/slog"
	"os"
)

// Log is safe to use before Init; Init swaps in the configured handler.
var Log = slog.Default()

func Init() {
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	Log = slog.New(handler)
}
