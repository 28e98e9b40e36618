package dashboard

import (
	dashboardsvc "github.com/amirasaad/networth/pkg/service/dashboard"
	"github.com/amirasaad/networth/webapi/common"
	"github.com/gofiber/fiber/v2"
)

func Routes(router fiber.Router, svc *dashboardsvc.Service, protected fiber.Handler) {
	router.Get("/dashboard", protected, GetDashboard(svc))
}

// GetDashboard returns the user's overview.
// @Summary Dashboard
// @Description Latest and previous snapshot, change, net worth history and the latest category breakdown
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.Dashboard
// @Failure 401 {object} common.ErrorResponse
// @Router /api/dashboard [get]
// @Security BearerAuth
func GetDashboard(svc *dashboardsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c)
		if err != nil {
			return common.HandleError(c, err)
		}
		d, err := svc.Get(c.Context(), userID)
		if err != nil {
			return common.HandleError(c, err)
		}
		return c.JSON(d)
	}
}
