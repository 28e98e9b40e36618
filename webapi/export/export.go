package export

import (
	"bytes"
	"fmt"
	"time"

	exportsvc "github.com/amirasaad/networth/pkg/service/export"
	"github.com/amirasaad/networth/webapi/common"
	"github.com/gofiber/fiber/v2"
)

func Routes(router fiber.Router, svc *exportsvc.Service, protected fiber.Handler) {
	router.Get("/export", protected, Export(svc))
}

// Export downloads every snapshot of the user.
// @Summary Export snapshots
// @Description One row per snapshot item plus three SUMMARY rows per snapshot
// @Tags export
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "csv (default) or xlsx"
// @Success 200 {file} file
// @Failure 400 {object} common.ErrorResponse
// @Failure 401 {object} common.ErrorResponse
// @Router /api/export [get]
// @Security BearerAuth
func Export(svc *exportsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c)
		if err != nil {
			return common.HandleError(c, err)
		}
		format, err := exportsvc.ParseFormat(c.Query("format"))
		if err != nil {
			return common.HandleError(c, err)
		}
		var buf bytes.Buffer
		if err := svc.Export(c.Context(), userID, format, &buf); err != nil {
			return common.HandleError(c, err)
		}
		c.Set(fiber.HeaderContentType, format.ContentType())
		c.Set(fiber.HeaderContentDisposition,
			fmt.Sprintf("attachment; filename=%q", exportsvc.Filename(format, time.Now())))
		return c.Send(buf.Bytes())
	}
}
