package lineitem

import (
	lineitemsvc "github.com/amirasaad/networth/pkg/service/lineitem"
	"github.com/amirasaad/networth/webapi/common"
	"github.com/gofiber/fiber/v2"
)

func Routes(router fiber.Router, svc *lineitemsvc.Service, protected fiber.Handler) {
	router.Post("/line-items", protected, CreateLineItem(svc))
	router.Put("/line-items/:id", protected, RenameLineItem(svc))
}

// CreateLineItem adds a line item to one of the user's categories.
// @Summary Create a line item
// @Tags line-items
// @Accept json
// @Produce json
// @Param request body CreateLineItemInput true "Line item"
// @Success 201 {object} dto.LineItemRead
// @Failure 400 {object} common.ErrorResponse
// @Failure 401 {object} common.ErrorResponse
// @Failure 404 {object} common.ErrorResponse
// @Router /api/line-items [post]
// @Security BearerAuth
func CreateLineItem(svc *lineitemsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c)
		if err != nil {
			return common.HandleError(c, err)
		}
		input, err := common.BindAndValidate[CreateLineItemInput](c)
		if input == nil {
			return err // error response already written
		}
		created, err := svc.Create(c.Context(), userID, input.CategoryID, input.Name)
		if err != nil {
			return common.HandleError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

// RenameLineItem changes the name of a line item.
// @Summary Rename a line item
// @Tags line-items
// @Accept json
// @Produce json
// @Param id path string true "Line item ID"
// @Param request body RenameLineItemInput true "New name"
// @Success 200 {object} dto.LineItemRead
// @Failure 400 {object} common.ErrorResponse
// @Failure 401 {object} common.ErrorResponse
// @Failure 404 {object} common.ErrorResponse
// @Router /api/line-items/{id} [put]
// @Security BearerAuth
func RenameLineItem(svc *lineitemsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c)
		if err != nil {
			return common.HandleError(c, err)
		}
		id, err := common.ParseID(c, "id")
		if err != nil {
			return common.HandleError(c, err)
		}
		input, err := common.BindAndValidate[RenameLineItemInput](c)
		if input == nil {
			return err // error response already written
		}
		updated, err := svc.Rename(c.Context(), userID, id, input.Name)
		if err != nil {
			return common.HandleError(c, err)
		}
		return c.JSON(updated)
	}
}
