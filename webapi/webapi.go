// Package webapi wires the HTTP surface of the net-worth tracker.
// Endpoints live in sub-packages per resource:
// - snapshot: the snapshot ledger
// - category, lineitem: the user's asset and liability structure
// - dashboard, export: read models over the snapshots
// - user, account, currency, auth: settings and session
package webapi

import (
	"context"
	"strings"
	"time"

	"github.com/amirasaad/networth/pkg/app"
	"github.com/amirasaad/networth/pkg/middleware"
	accountweb "github.com/amirasaad/networth/webapi/account"
	authweb "github.com/amirasaad/networth/webapi/auth"
	categoryweb "github.com/amirasaad/networth/webapi/category"
	"github.com/amirasaad/networth/webapi/common"
	currencyweb "github.com/amirasaad/networth/webapi/currency"
	dashboardweb "github.com/amirasaad/networth/webapi/dashboard"
	exportweb "github.com/amirasaad/networth/webapi/export"
	lineitemweb "github.com/amirasaad/networth/webapi/lineitem"
	snapshotweb "github.com/amirasaad/networth/webapi/snapshot"
	userweb "github.com/amirasaad/networth/webapi/user"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

// SetupApp Initialize Fiber with custom configuration
func SetupApp(app *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return common.ErrorJSON(c, fiber.StatusInternalServerError, "Internal Server Error")
		},
	})
	fiberApp.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled:      true,
		PersistAuthorization: true,
	}))

	// Behind a proxy the client is the first X-Forwarded-For hop, then
	// X-Real-IP, then the peer address.
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        app.Config.RateLimit.MaxRequests,
		Expiration: app.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ErrorJSON(c, fiber.StatusTooManyRequests, "Too Many Requests")
		},
	}))
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())

	fiberApp.Get(
		"/",
		func(c *fiber.Ctx) error {
			return c.SendString("Net Worth API is running! 🚀")
		},
	)
	fiberApp.Get("/healthz", Health(app))

	api := fiberApp.Group("/api")
	protected := middleware.Protected(app.AuthService, app.Config.Auth)

	snapshotweb.Routes(api, app.LedgerService, protected)
	categoryweb.Routes(api, app.CategoryService, protected)
	lineitemweb.Routes(api, app.LineItemService, protected)
	dashboardweb.Routes(api, app.DashboardService, protected)
	exportweb.Routes(api, app.ExportService, protected)
	userweb.Routes(api, app.UserService, protected)
	accountweb.Routes(api, app.UserService, protected)
	authweb.Routes(api, protected)
	currencyweb.Routes(api)
	return fiberApp
}

// Health reports whether the database answers.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} common.SuccessResponse
// @Failure 503 {object} common.ErrorResponse
// @Router /healthz [get]
func Health(app *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if app.Deps.DB != nil {
			ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
			defer cancel()
			if err := app.Deps.DB.Ping(ctx); err != nil {
				app.Deps.Logger.Error("health check failed", "error", err)
				return common.ErrorJSON(c, fiber.StatusServiceUnavailable, "Database unavailable")
			}
		}
		return c.JSON(common.SuccessResponse{Success: true})
	}
}
