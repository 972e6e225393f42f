package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// NewApp wires the scheduler handler into a fiber application.
func NewApp(handler SchedulerHandler) *fiber.App {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(assignRequestID)
	app.Use(logger.New())

	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Get("/health", handler.Health)
	}
	return app
}

func assignRequestID(ctx *fiber.Ctx) error {
	id := ctx.Get(requestIDHeader)
	if id == "" {
		id = uuid.New().String()
	}
	ctx.Locals(requestIDHeader, id)
	ctx.Set(requestIDHeader, id)
	return ctx.Next()
}

func requestID(ctx *fiber.Ctx) string {
	id, _ := ctx.Locals(requestIDHeader).(string)
	return id
}
