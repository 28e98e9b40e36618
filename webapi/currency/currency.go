package currency

import (
	"github.com/amirasaad/networth/pkg/currency"
	"github.com/gofiber/fiber/v2"
)

func Routes(router fiber.Router) {
	router.Get("/currencies", ListCurrencies())
}

// ListCurrencies returns the supported display currencies.
// @Summary List supported currencies
// @Tags settings
// @Produce json
// @Success 200 {array} currency.Meta
// @Router /api/currencies [get]
func ListCurrencies() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(currency.All())
	}
}
