package handlers

import (
	"github.com/gofiber/fiber/v2"

	"Aethera-Backend/domain"
	"Aethera-Backend/internal/api/presenters"
	"Aethera-Backend/pkg/report"
)

type (
	ReportHandler interface {
		GenerateReport(c *fiber.Ctx) error
		GetSummary(c *fiber.Ctx) error
	}

	reportHandler struct {
		reportService report.ReportService
	}
)

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandler{reportService: reportService}
}

func (h *reportHandler) GenerateReport(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.reportService.GenerateReport(c.Context(), report.Identity{UserID: userID})
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGenerateReport, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGenerateReport)
}

func (h *reportHandler) GetSummary(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.reportService.GetSummary(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetSummary, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSummary)
}
