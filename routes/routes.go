package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "certgen/api-gateway/docs" // registers the swagger spec
	"certgen/api-gateway/handlers"
	"certgen/api-gateway/middleware"
	"certgen/api-gateway/utils"
)

// MaxBodySize bounds request bodies. Backgrounds arrive inline as base64 data
// URLs, so it matches the 16 MiB document ceiling of the original store.
const MaxBodySize = 16 * 1024 * 1024

// NewApp builds the Fiber app with middleware and every route mounted.
func NewApp(h *handlers.ApplicationHandler, log *logrus.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "certificate-generator",
		DisableStartupMessage: true,
		BodyLimit:             MaxBodySize,
		ErrorHandler:          errorHandler(log),
	})

	app.Use(middleware.RequestLogger(log))
	app.Use(recover.New(recover.Config{EnableStackTrace: true}))
	// Any origin may call the API with credentials. Fiber rejects a "*"
	// wildcard combined with credentials, so the origin is reflected instead.
	// AllowOrigins is a placeholder only: left empty it defaults to "*" and
	// trips that check. AllowOriginsFunc takes precedence for every request.
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:3000",
		AllowOriginsFunc: func(string) bool { return true },
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
		AllowCredentials: true,
	}))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))

	app.Get("/health", h.Health)
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	Register(app.Group("/api"), h)
	return app
}

// Register mounts the resource routes on router.
func Register(router fiber.Router, h *handlers.ApplicationHandler) {
	router.Get("/", h.Root)

	router.Post("/templates", h.CreateTemplate)
	router.Get("/templates", h.ListTemplates)
	router.Get("/templates/:id", h.GetTemplate)
	router.Delete("/templates/:id", h.DeleteTemplate)

	router.Post("/certificates/generate", h.GenerateCertificate)

	router.Post("/status", h.CreateStatusCheck)
	router.Get("/status", h.ListStatusChecks)
}

// errorHandler renders errors that escape handlers, including unknown
// routes and recovered panics, in the same shape as handler errors.
func errorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		} else {
			log.WithField("path", c.Path()).Errorf("Unhandled error: %v", err)
		}
		return utils.RespondWithError(c, code, message)
	}
}
