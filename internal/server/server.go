package server

import (
	"strings"
	"time"

	"lokanta-backend/internal/auth"
	"lokanta-backend/internal/branches"
	"lokanta-backend/internal/config"
	"lokanta-backend/internal/inventory"
	"lokanta-backend/internal/menu"
	"lokanta-backend/internal/orders"
	"lokanta-backend/internal/reviews"
	"lokanta-backend/internal/store"
	"lokanta-backend/internal/users"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"
)

// New builds the fiber app for the given configuration. The resource set is
// driven by the feature flags, so one binary covers every deployed variant.
func New(cfg *config.Config, st *store.Store, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Error("unexpected error",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal server error",
			})
		},
	})

	app.Use(requestLogger(log))

	if cfg.CORSEnabled {
		origins := strings.Split(cfg.CORSOrigins, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		app.Use(cors.New(cors.Config{
			AllowOrigins: strings.Join(origins, ","),
			AllowHeaders: "Origin, Content-Type, Accept, Authorization",
			AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		}))
	}

	api := app.Group(cfg.APIPrefix)

	// Login stays public even when the rest of the surface requires a token.
	api.Post("/login", auth.LoginHandler(cfg, st))

	if cfg.AuthRequired {
		api.Use(auth.Middleware(cfg.JWTSecret))
	}

	api.Post("/users", users.CreateHandler(st, cfg.Features.BranchLinkOnCreate))
	api.Get("/users", users.ListHandler(st))
	api.Get("/users/:id", users.GetHandler(st))
	api.Put("/users/:id", users.UpdateHandler(st))
	api.Delete("/users/:id", users.DeleteHandler(st))
	api.Put("/users/:userId/add-branch/:branchId", users.AddBranchHandler(st))
	api.Put("/users/:userId/remove-branch/:branchId", users.RemoveBranchHandler(st))

	api.Post("/branches", branches.CreateHandler(st))
	api.Get("/branches", branches.ListHandler(st))

	if cfg.Features.Inventory {
		api.Post("/inventory", inventory.CreateHandler(st))
		api.Get("/inventory", inventory.ListHandler(st))
		api.Get("/inventory/:id", inventory.GetHandler(st))
		api.Put("/inventory/:id", inventory.UpdateHandler(st))
		api.Delete("/inventory/:id", inventory.DeleteHandler(st))
	}

	if cfg.Features.MenuItems {
		api.Post("/menu-items", menu.CreateHandler(st))
		api.Get("/menu-items", menu.ListHandler(st))
		api.Get("/menu-items/:id", menu.GetHandler(st))
		api.Put("/menu-items/:id", menu.UpdateHandler(st))
		api.Delete("/menu-items/:id", menu.DeleteHandler(st))
	}

	if cfg.Features.Orders {
		api.Post("/orders", orders.CreateHandler(st))
		api.Get("/orders", orders.ListHandler(st))
		api.Get("/orders/:id", orders.GetHandler(st))
	}

	if cfg.Features.Reviews {
		api.Post("/reviews", reviews.CreateHandler(st))
		api.Get("/reviews", reviews.ListHandler(st))
		api.Get("/menu-items/:id/reviews", reviews.ListByMenuItemHandler(st))
	}

	return app
}

func requestLogger(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		log.Info("request completed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
		)
		return err
	}
}
