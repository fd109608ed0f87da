package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"Aethera-Backend/domain"
	"Aethera-Backend/internal/api/presenters"
	"Aethera-Backend/pkg/document"
)

type (
	DocumentHandler interface {
		UploadDocument(c *fiber.Ctx) error
		GetScanResult(c *fiber.Ctx) error
		SaveExtractedRecords(c *fiber.Ctx) error
	}

	documentHandler struct {
		documentService document.DocumentService
		validator       *validator.Validate
	}
)

func NewDocumentHandler(documentService document.DocumentService, validator *validator.Validate) DocumentHandler {
	return &documentHandler{
		documentService: documentService,
		validator:       validator,
	}
}

func (h *documentHandler) UploadDocument(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UploadDocumentRequest)

	file, err := c.FormFile("document")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req.Document = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadDocument, err)
	}

	res, err := h.documentService.UploadDocument(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadDocument, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessUploadDocument)
}

func (h *documentHandler) GetScanResult(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	scanID := c.Params("id")

	res, err := h.documentService.GetScanResult(c.Context(), scanID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetScanResult, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetScanResult)
}

func (h *documentHandler) SaveExtractedRecords(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SaveExtractedRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveExtracted, err)
	}

	if err := h.documentService.SaveExtractedRecords(c.Context(), *req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveExtracted, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSaveExtracted)
}
