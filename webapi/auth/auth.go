package auth

import (
	"github.com/amirasaad/networth/webapi/common"
	"github.com/gofiber/fiber/v2"
)

func Routes(router fiber.Router, protected fiber.Handler) {
	router.Get("/auth/session", protected, GetSession())
}

// GetSession returns the session of the request.
// @Summary Current session
// @Tags auth
// @Produce json
// @Success 200 {object} dto.Session
// @Failure 401 {object} common.ErrorResponse
// @Router /api/auth/session [get]
// @Security BearerAuth
func GetSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := common.CurrentSession(c)
		if err != nil {
			return common.HandleError(c, err)
		}
		return c.JSON(s)
	}
}
