package handlers

import (
	"fmt"

	"Stocked/internal/services"

	"github.com/gofiber/fiber/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportHandler struct {
	service services.ExportService
}

func NewExportHandler(service services.ExportService) *ExportHandler {
	return &ExportHandler{service: service}
}

func (h *ExportHandler) ExportInventory(c *fiber.Ctx) error {
	workbook, filename, err := h.service.InventoryWorkbook()
	if err != nil {
		return domainError(c, err, "export unavailable")
	}
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(workbook)
}
