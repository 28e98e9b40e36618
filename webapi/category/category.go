package category

import (
	categorysvc "github.com/amirasaad/networth/pkg/service/category"
	"github.com/amirasaad/networth/webapi/common"
	"github.com/gofiber/fiber/v2"
)

func Routes(router fiber.Router, svc *categorysvc.Service, protected fiber.Handler) {
	router.Get("/categories", protected, ListCategories(svc))
	router.Post("/categories", protected, CreateCategory(svc))
	router.Put("/categories/:id", protected, UpdateCategory(svc))
}

// ListCategories returns the user's categories with their line items.
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {array} dto.CategoryRead
// @Failure 401 {object} common.ErrorResponse
// @Router /api/categories [get]
// @Security BearerAuth
func ListCategories(svc *categorysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c)
		if err != nil {
			return common.HandleError(c, err)
		}
		list, err := svc.List(c.Context(), userID)
		if err != nil {
			return common.HandleError(c, err)
		}
		return c.JSON(list)
	}
}

// CreateCategory adds a category after the user's existing ones.
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param request body CreateCategoryInput true "Category"
// @Success 201 {object} dto.CategoryRead
// @Failure 400 {object} common.ErrorResponse
// @Failure 401 {object} common.ErrorResponse
// @Router /api/categories [post]
// @Security BearerAuth
func CreateCategory(svc *categorysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c)
		if err != nil {
			return common.HandleError(c, err)
		}
		input, err := common.BindAndValidate[CreateCategoryInput](c)
		if input == nil {
			return err // error response already written
		}
		created, err := svc.Create(c.Context(), userID, input.Name, input.Type, input.Color)
		if err != nil {
			return common.HandleError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

// UpdateCategory renames and recolors a category.
// @Summary Update a category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param request body UpdateCategoryInput true "Changes"
// @Success 200 {object} dto.CategoryRead
// @Failure 400 {object} common.ErrorResponse
// @Failure 401 {object} common.ErrorResponse
// @Failure 404 {object} common.ErrorResponse
// @Router /api/categories/{id} [put]
// @Security BearerAuth
func UpdateCategory(svc *categorysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c)
		if err != nil {
			return common.HandleError(c, err)
		}
		id, err := common.ParseID(c, "id")
		if err != nil {
			return common.HandleError(c, err)
		}
		input, err := common.BindAndValidate[UpdateCategoryInput](c)
		if input == nil {
			return err // error response already written
		}
		updated, err := svc.Update(c.Context(), userID, id, input.Name, input.Color)
		if err != nil {
			return common.HandleError(c, err)
		}
		return c.JSON(updated)
	}
}
