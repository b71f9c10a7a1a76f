package fiberlog

import (
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

func getLogrusFields(tags []string, c *fiber.Ctx, start, end time.Time) log.Fields {
	f := make(log.Fields)
	for _, tag := range tags {
		switch tag {
		case TagStatus:
			f[TagStatus] = c.Response().StatusCode()
		case TagLatency:
			f[TagLatency] = end.Sub(start).String()
		case TagMethod:
			f[TagMethod] = c.Method()
		case TagPath:
			f[TagPath] = c.Path()
		case TagIP:
			f[TagIP] = c.IP()
		}
	}
	return f
}

// New creates a new middleware handler
func New(config ...Config) fiber.Handler {
	var cfg Config
	if len(config) == 0 {
		cfg = ConfigDefault
	} else {
		cfg = config[0]
	}
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		end := time.Now()
		if c.Method() == "OPTIONS" {
			return err
		}

		message := "requisição api"
		fields := getLogrusFields(cfg.Tags, c, start, end)
		switch cfg.Logger {
		case nil:
			log.WithFields(fields).Info(message)
		default:
			entry := cfg.Logger.WithFields(fields)
			if c.Response() != nil && c.Response().StatusCode() >= 300 {
				entry.Warn(message)
			} else {
				entry.Info(message)
			}
		}

		return err
	}
}
