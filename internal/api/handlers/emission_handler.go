package handlers

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"Aethera-Backend/domain"
	"Aethera-Backend/internal/api/presenters"
	"Aethera-Backend/pkg/emission"
)

type (
	EmissionHandler interface {
		AddEmission(c *fiber.Ctx) error
		UpdateEmission(c *fiber.Ctx) error
		DeleteEmission(c *fiber.Ctx) error
		GetEmissions(c *fiber.Ctx) error
		ImportCSV(c *fiber.Ctx) error
	}

	emissionHandler struct {
		emissionService emission.EmissionService
		validator       *validator.Validate
	}
)

func NewEmissionHandler(emissionService emission.EmissionService, validator *validator.Validate) EmissionHandler {
	return &emissionHandler{
		emissionService: emissionService,
		validator:       validator,
	}
}

func (h *emissionHandler) AddEmission(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddEmissionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddEmission, err)
	}

	res, err := h.emissionService.AddEmission(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddEmission, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddEmission)
}

func (h *emissionHandler) UpdateEmission(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recordID := c.Params("id")
	req := new(domain.UpdateEmissionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateEmission, err)
	}

	if err := h.emissionService.UpdateEmission(c.Context(), recordID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateEmission, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateEmission)
}

func (h *emissionHandler) DeleteEmission(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recordID := c.Params("id")

	if err := h.emissionService.DeleteEmission(c.Context(), recordID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteEmission, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteEmission)
}

func (h *emissionHandler) GetEmissions(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	records, count, err := h.emissionService.GetEmissions(c.Context(), userID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetEmissions, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"records": records,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetEmissions)
}

func (h *emissionHandler) ImportCSV(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.ImportCSVRequest)

	file, err := c.FormFile("file")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req.File = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedImportCSV, err)
	}

	res, err := h.emissionService.ImportCSV(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedImportCSV, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessImportCSV)
}
