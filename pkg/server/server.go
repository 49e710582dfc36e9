package server

import (
	"errors"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/redmane/redmane/pkg/config"
	"github.com/redmane/redmane/pkg/contract"
)

func errorHandler(c *fiber.Ctx, err error) error {
	var e *contract.Error
	if !errors.As(err, &e) {
		code := contract.InternalError

		var f *fiber.Error
		if errors.As(err, &f) {
			switch f.Code {
			case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity, fiber.StatusRequestEntityTooLarge:
				code = contract.BadRequest
			case fiber.StatusServiceUnavailable:
				code = contract.ServiceUnderMaintenance
			case fiber.StatusNotFound, fiber.StatusMethodNotAllowed:
				code = contract.EndpointNotFound
			}
		}

		e = contract.NewError(code, err.Error())
	}

	var fn func(format string, args ...any)

	switch e.StatusCode() {
	case fiber.StatusBadRequest:
		fn = logrus.Infof
	case fiber.StatusServiceUnavailable:
		fn = logrus.Warnf
	case fiber.StatusNotFound, fiber.StatusUnauthorized:
		fn = logrus.Debugf
	default:
		fn = logrus.Errorf
	}

	fn("Error encountered in %s %s: %s", c.Method(), c.Path(), err)

	return c.Status(e.StatusCode()).JSON(e)
}

// NewApp builds the HTTP application serving the redmane API.
func NewApp(cfg *config.Config, service contract.Service, authenticator contract.Authenticator) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit:             cfg.BodyLimit,
		ReadTimeout:           5 * time.Second,
		WriteTimeout:          60 * time.Second,
		IdleTimeout:           120 * time.Second,
		ServerHeader:          "redmane/" + cfg.Version,
		DisableStartupMessage: true,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		ErrorHandler:          errorHandler,
	})

	metrics := newMetrics()

	app.Use(recover.New(recover.Config{EnableStackTrace: true}))
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(metrics.middleware)
	app.Use(logger.New(logger.Config{
		Format: "${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		Output: logrus.StandardLogger().Writer(),
	}))
	app.Use(compress.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.CORS.AllowOrigins, ","),
		AllowMethods: strings.Join([]string{
			fiber.MethodGet, fiber.MethodPost, fiber.MethodPut,
			fiber.MethodDelete, fiber.MethodPatch, fiber.MethodHead, fiber.MethodOptions,
		}, ","),
		AllowHeaders: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/projects/", fiber.StatusTemporaryRedirect)
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})
	app.Get("/version", func(c *fiber.Ctx) error {
		return c.SendString(cfg.Version)
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(metrics.registry, promhttp.HandlerOpts{})))

	registerRedmaneServiceRoutes(service, NewHTTPRequestParser(), app)
	registerAuthRoutes(authenticator, app)

	return app
}
