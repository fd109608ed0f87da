package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"Aethera-Backend/domain"
	"Aethera-Backend/internal/api/presenters"
	"Aethera-Backend/pkg/company"
)

type (
	CompanyHandler interface {
		GetCompanyInfo(c *fiber.Ctx) error
		SaveCompanyInfo(c *fiber.Ctx) error
	}

	companyHandler struct {
		companyService company.CompanyService
		validator      *validator.Validate
	}
)

func NewCompanyHandler(companyService company.CompanyService, validator *validator.Validate) CompanyHandler {
	return &companyHandler{
		companyService: companyService,
		validator:      validator,
	}
}

func (h *companyHandler) GetCompanyInfo(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.companyService.GetCompanyInfo(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCompanyInfo, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCompanyInfo)
}

func (h *companyHandler) SaveCompanyInfo(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SaveCompanyInfoRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveCompanyInfo, err)
	}

	res, err := h.companyService.SaveCompanyInfo(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveCompanyInfo, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSaveCompanyInfo)
}
