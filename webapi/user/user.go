package user

import (
	usersvc "github.com/amirasaad/networth/pkg/service/user"
	"github.com/amirasaad/networth/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the settings endpoints.
func Routes(router fiber.Router, svc *usersvc.Service, protected fiber.Handler) {
	router.Get("/settings", protected, GetSettings(svc))
	router.Patch("/settings", protected, UpdateSettings(svc))
}

// GetSettings returns the user's settings.
// @Summary Get settings
// @Tags settings
// @Produce json
// @Success 200 {object} dto.Settings
// @Failure 401 {object} common.ErrorResponse
// @Router /api/settings [get]
// @Security BearerAuth
func GetSettings(svc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c)
		if err != nil {
			return common.HandleError(c, err)
		}
		settings, err := svc.GetSettings(c.Context(), userID)
		if err != nil {
			return common.HandleError(c, err)
		}
		return c.JSON(settings)
	}
}

// UpdateSettings changes the display currency.
// @Summary Update settings
// @Tags settings
// @Accept json
// @Produce json
// @Param request body UpdateSettingsInput true "Settings"
// @Success 200 {object} dto.Settings
// @Failure 400 {object} common.ErrorResponse
// @Failure 401 {object} common.ErrorResponse
// @Router /api/settings [patch]
// @Security BearerAuth
func UpdateSettings(svc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c)
		if err != nil {
			return common.HandleError(c, err)
		}
		input, err := common.BindAndValidate[UpdateSettingsInput](c)
		if input == nil {
			return err // error response already written
		}
		settings, err := svc.UpdateCurrency(c.Context(), userID, input.Currency)
		if err != nil {
			return common.HandleError(c, err)
		}
		return c.JSON(settings)
	}
}
