package snapshot

import (
	"github.com/amirasaad/networth/pkg/service/ledger"
	"github.com/amirasaad/networth/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the snapshot endpoints on router behind protected.
func Routes(router fiber.Router, svc *ledger.Service, protected fiber.Handler) {
	router.Get("/snapshots", protected, ListSnapshots(svc))
	router.Post("/snapshots", protected, CreateSnapshot(svc))
	router.Get("/snapshots/:id", protected, GetSnapshot(svc))
	router.Get("/snapshots/:id/breakdown", protected, GetBreakdown(svc))
	router.Delete("/snapshots/:id", protected, DeleteSnapshot(svc))
}

// ListSnapshots returns the user's snapshots.
// @Summary List snapshots
// @Description Snapshots of the signed-in user, newest date first, each with its item count
// @Tags snapshots
// @Produce json
// @Success 200 {array} dto.SnapshotSummary
// @Failure 401 {object} common.ErrorResponse
// @Router /api/snapshots [get]
// @Security BearerAuth
func ListSnapshots(svc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c)
		if err != nil {
			return common.HandleError(c, err)
		}
		list, err := svc.ListSnapshots(c.Context(), userID)
		if err != nil {
			return common.HandleError(c, err)
		}
		return c.JSON(list)
	}
}

// CreateSnapshot records the values of the user's line items.
// @Summary Create a snapshot
// @Description Validates ownership of every line item, computes the totals and stores the snapshot with its items atomically
// @Tags snapshots
// @Accept json
// @Produce json
// @Param request body CreateSnapshotInput true "Snapshot"
// @Success 201 {object} dto.SnapshotRead
// @Failure 400 {object} common.ErrorResponse
// @Failure 401 {object} common.ErrorResponse
// @Failure 403 {object} common.ErrorResponse
// @Failure 500 {object} common.ErrorResponse
// @Router /api/snapshots [post]
// @Security BearerAuth
func CreateSnapshot(svc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c)
		if err != nil {
			return common.HandleError(c, err)
		}
		input, err := common.BindAndValidate[CreateSnapshotInput](c)
		if input == nil {
			return err // error response already written
		}
		created, err := svc.CreateSnapshot(c.Context(), userID, input.toRequest())
		if err != nil {
			return common.HandleError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

// GetSnapshot returns one snapshot with its items.
// @Summary Get a snapshot
// @Tags snapshots
// @Produce json
// @Param id path string true "Snapshot ID"
// @Success 200 {object} dto.SnapshotDetail
// @Failure 401 {object} common.ErrorResponse
// @Failure 404 {object} common.ErrorResponse
// @Router /api/snapshots/{id} [get]
// @Security BearerAuth
func GetSnapshot(svc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c)
		if err != nil {
			return common.HandleError(c, err)
		}
		id, err := common.ParseID(c, "id")
		if err != nil {
			return common.HandleError(c, err)
		}
		detail, err := svc.GetSnapshot(c.Context(), userID, id)
		if err != nil {
			return common.HandleError(c, err)
		}
		return c.JSON(detail)
	}
}

// GetBreakdown groups a snapshot's values by category.
// @Summary Snapshot breakdown by category
// @Tags snapshots
// @Produce json
// @Param id path string true "Snapshot ID"
// @Success 200 {array} snapshot.CategoryTotal
// @Failure 401 {object} common.ErrorResponse
// @Failure 404 {object} common.ErrorResponse
// @Router /api/snapshots/{id}/breakdown [get]
// @Security BearerAuth
func GetBreakdown(svc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c)
		if err != nil {
			return common.HandleError(c, err)
		}
		id, err := common.ParseID(c, "id")
		if err != nil {
			return common.HandleError(c, err)
		}
		groups, err := svc.Breakdown(c.Context(), userID, id)
		if err != nil {
			return common.HandleError(c, err)
		}
		return c.JSON(groups)
	}
}

// DeleteSnapshot removes a snapshot and its items.
// @Summary Delete a snapshot
// @Tags snapshots
// @Produce json
// @Param id path string true "Snapshot ID"
// @Success 200 {object} common.SuccessResponse
// @Failure 401 {object} common.ErrorResponse
// @Failure 404 {object} common.ErrorResponse
// @Router /api/snapshots/{id} [delete]
// @Security BearerAuth
func DeleteSnapshot(svc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c)
		if err != nil {
			return common.HandleError(c, err)
		}
		id, err := common.ParseID(c, "id")
		if err != nil {
			return common.HandleError(c, err)
		}
		if err := svc.DeleteSnapshot(c.Context(), userID, id); err != nil {
			return common.HandleError(c, err)
		}
		return c.JSON(common.SuccessResponse{Success: true})
	}
}
