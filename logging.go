package main

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func SetupLogging(logConfig LogConfig) {
	level, err := zerolog.ParseLevel(strings.ToLower(logConfig.Level))

	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	var out io.Writer = os.Stderr

	if logConfig.Format == "console" {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}

	log.Logger = zerolog.New(out).With().Timestamp().Logger()
}

// RequestLogger replaces fiber's text logger with one structured line per request.
func RequestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	status := c.Response().StatusCode()

	if err != nil {
		status = statusOf(err)
	}

	event := log.Info()

	if status >= fiber.StatusInternalServerError {
		event = log.Error().Err(err)
	}

	event.
		Str("request_id", requestId(c)).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Int("status", status).
		Dur("latency", time.Since(start)).
		Msg("request")

	return err
}

func requestId(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}

	return ""
}
