package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"Aethera-Backend/domain"
	"Aethera-Backend/internal/api/presenters"
	"Aethera-Backend/pkg/factor"
)

type (
	FactorHandler interface {
		GetFactors(c *fiber.Ctx) error
		UpsertFactor(c *fiber.Ctx) error
		DeleteFactor(c *fiber.Ctx) error
	}

	factorHandler struct {
		factorService factor.FactorService
		validator     *validator.Validate
	}
)

func NewFactorHandler(factorService factor.FactorService, validator *validator.Validate) FactorHandler {
	return &factorHandler{
		factorService: factorService,
		validator:     validator,
	}
}

func (h *factorHandler) GetFactors(c *fiber.Ctx) error {
	res, err := h.factorService.GetFactors(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFactors, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFactors)
}

func (h *factorHandler) UpsertFactor(c *fiber.Ctx) error {
	role := c.Locals("role").(string)
	if role != domain.RoleAdmin {
		return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedUpsertFactor, domain.ErrUserNotAllowed)
	}

	req := new(domain.UpsertFactorRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpsertFactor, err)
	}

	res, err := h.factorService.UpsertFactor(c.Context(), req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpsertFactor, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpsertFactor)
}

func (h *factorHandler) DeleteFactor(c *fiber.Ctx) error {
	role := c.Locals("role").(string)
	if role != domain.RoleAdmin {
		return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedDeleteFactor, domain.ErrUserNotAllowed)
	}

	factorID := c.Params("id")

	if err := h.factorService.DeleteFactor(c.Context(), factorID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteFactor, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFactor)
}
