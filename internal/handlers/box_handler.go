package handlers

import (
	"net/http"

	"Stocked/internal/mapper"
	"Stocked/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type BoxHandler struct {
	service    services.BoxTypeService
	prediction services.PredictionService
}

func NewBoxHandler(service services.BoxTypeService, prediction services.PredictionService) *BoxHandler {
	return &BoxHandler{service: service, prediction: prediction}
}

func (h *BoxHandler) CreateBox(c *fiber.Ctx) error {
	var req struct {
		Name         string          `json:"name"`
		Quantity     int             `json:"quantity"`
		Cost         decimal.Decimal `json:"cost"`
		MinThreshold int             `json:"min_threshold"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}

	box, err := h.service.CreateBoxType(req.Name, req.Quantity, req.Cost, req.MinThreshold)
	if err != nil {
		return domainError(c, err, "box not found")
	}
	return c.Status(http.StatusCreated).JSON(box)
}

func (h *BoxHandler) ListBoxes(c *fiber.Ctx) error {
	boxes, err := h.service.GetBoxTypes()
	if err != nil {
		return domainError(c, err, "box not found")
	}
	predictions, err := h.prediction.PredictAll(boxes)
	if err != nil {
		return domainError(c, err, "box not found")
	}
	return c.JSON(mapper.ToBoxTypeGetDTOs(boxes, predictions))
}

func (h *BoxHandler) GetBoxByID(c *fiber.Ctx) error {
	box, err := h.service.GetBoxTypeByID(c.Params("id"))
	if err != nil {
		return domainError(c, err, "box not found")
	}
	prediction, err := h.prediction.PredictBox(box)
	if err != nil {
		return domainError(c, err, "box not found")
	}
	return c.JSON(mapper.ToBoxTypeGetDTO(box, prediction))
}

func (h *BoxHandler) UpdateBox(c *fiber.Ctx) error {
	var req struct {
		Name         *string          `json:"name"`
		Quantity     *int             `json:"quantity"`
		Cost         *decimal.Decimal `json:"cost"`
		MinThreshold *int             `json:"min_threshold"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}

	box, err := h.service.UpdateBoxType(c.Params("id"), services.BoxTypePatch{
		Name:         req.Name,
		Quantity:     req.Quantity,
		Cost:         req.Cost,
		MinThreshold: req.MinThreshold,
	})
	if err != nil {
		return domainError(c, err, "box not found")
	}
	return c.JSON(box)
}

func (h *BoxHandler) DeleteBox(c *fiber.Ctx) error {
	if err := h.service.DeleteBoxType(c.Params("id")); err != nil {
		return domainError(c, err, "box not found")
	}
	return c.SendStatus(http.StatusNoContent)
}
