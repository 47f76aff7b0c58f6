// Jamf is a backend that aggregates the Jamf Pro device inventory
package main

import (
	"fmt"
	"time"

	"github.com/VinukaThejana/go-utils/logger"
	"github.com/VinukaThejana/jamf/config"
	"github.com/VinukaThejana/jamf/connect"
	"github.com/VinukaThejana/jamf/controllers"
	"github.com/VinukaThejana/jamf/middleware"
	"github.com/VinukaThejana/jamf/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberLogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
)

func main() {
	var (
		env  config.Env
		conn connect.Connector
	)

	env.Load()
	if !env.HasCredentials() {
		logger.Log("JAMF_USERNAME or JAMF_PASSWORD is not set, requests must send Basic credentials")
	}

	conn.InitHTTP(&env)
	conn.InitRatelimiter(&env)
	conn.InitRedis(&env)

	app := newApp(&env, &conn, &services.Device{Connect: services.Live})

	logger.Log(fmt.Sprintf("Listening on 0.0.0.0:%s", env.Port))
	logger.Errorf(app.Listen(fmt.Sprintf(":%s", env.Port)))
}

func newApp(env *config.Env, conn *connect.Connector, deviceS *services.Device) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "jamf",
		DisableStartupMessage: config.IsProd(env),
	})
	if config.GetDevEnv(env) == config.Dev {
		app.Use(fiberLogger.New())
	}

	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowOrigins: env.AllowedOrigins,
		AllowMethods: "GET,POST",
	}))

	limiterConfig := limiter.Config{
		Max:        env.RatelimiterMax,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusTooManyRequests)
		},
		LimiterMiddleware: limiter.SlidingWindow{},
	}
	if conn.Ratelimter != nil {
		limiterConfig.Storage = conn.Ratelimter
	}
	app.Use(limiter.New(limiterConfig))

	systemC := controllers.System{Conn: conn}
	credentialsC := controllers.Credentials{}
	deviceC := controllers.Device{DeviceS: deviceS}
	jamfM := middleware.Jamf{Env: env}

	app.Get("/", systemC.Hello)
	app.Get("/health", systemC.Health)

	app.Route("/api/jamf", func(router fiber.Router) {
		router.Post("/credentials", credentialsC.Check)
		// only computers exist in the Jamf instance, mobile devices are not listed
		router.Get("/devices", jamfM.Credentials, deviceC.Devices)
		router.Get("/computers", jamfM.Credentials, deviceC.Computers)
	})

	app.Route("/monitor", func(router fiber.Router) {
		router.Get("/metrics", monitor.New(monitor.Config{
			Title: "Monitor Jamf",
		}))
	})

	return app
}
