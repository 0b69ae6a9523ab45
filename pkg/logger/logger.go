package logger

import (
	"log/slog"
	"os"
)

// New returns a JSON slog logger tagged with the service name and host.
func New(service string) *slog.Logger {
	hostname, _ := os.Hostname()
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	return slog.New(handler).With(
		slog.String("service", service),
		slog.String("hostname", hostname),
	)
}
