package account

import (
	usersvc "github.com/amirasaad/networth/pkg/service/user"
	"github.com/amirasaad/networth/webapi/common"
	"github.com/gofiber/fiber/v2"
)

func Routes(router fiber.Router, svc *usersvc.Service, protected fiber.Handler) {
	router.Delete("/account", protected, DeleteAccount(svc))
}

// DeleteAccount deletes the signed-in user and everything they own.
// @Summary Delete account
// @Description Removes the user with all categories, line items and snapshots
// @Tags account
// @Produce json
// @Success 200 {object} common.SuccessResponse
// @Failure 401 {object} common.ErrorResponse
// @Router /api/account [delete]
// @Security BearerAuth
func DeleteAccount(svc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c)
		if err != nil {
			return common.HandleError(c, err)
		}
		if err := svc.DeleteAccount(c.Context(), userID); err != nil {
			return common.HandleError(c, err)
		}
		return c.JSON(common.SuccessResponse{Success: true})
	}
}
