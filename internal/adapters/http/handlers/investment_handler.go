package handlers

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Pratiable/22percent/internal/core/domain"
	"github.com/Pratiable/22percent/internal/core/services"
	"github.com/Pratiable/22percent/internal/pkg/export"
	"github.com/Pratiable/22percent/internal/pkg/pagination"
	"github.com/Pratiable/22percent/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// InvestmentHandler handles investment endpoints
type InvestmentHandler struct {
	investmentService *services.InvestmentService
	portfolioService  *services.PortfolioService
	summaryService    *services.SummaryService
}

// NewInvestmentHandler creates a new investment handler
func NewInvestmentHandler(
	investmentService *services.InvestmentService,
	portfolioService *services.PortfolioService,
	summaryService *services.SummaryService,
) *InvestmentHandler {
	return &InvestmentHandler{
		investmentService: investmentService,
		portfolioService:  portfolioService,
		summaryService:    summaryService,
	}
}

// History returns the signed user's investment history
// @Summary Investment history
// @Description Paginated investment history with per-status counts
// @Tags Investments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param offset query int false "Window offset" default(0)
// @Param limit query int false "Window size" default(10)
// @Param status query string false "Deal status filter"
// @Param search query string false "Deal name or id search"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /investments [get]
func (h *InvestmentHandler) History(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	window, err := pagination.GetWindow(c)
	if err != nil {
		return response.BadRequestCode(c, domain.CodeInvalidQueryValue, "offset and limit must be numbers")
	}

	status := c.Query("status")
	if status != "" && !domain.IsValidDealStatus(status) {
		return response.BadRequestCode(c, domain.CodeInvalidQueryValue, "unknown deal status")
	}

	input := &services.HistoryInput{
		Window: window,
		Status: status,
		Search: c.Query("search"),
	}

	result, err := h.investmentService.History(c.Context(), userID, input)
	if err != nil {
		return response.InternalServerError(c, "Failed to load investment history")
	}

	return response.Success(c, "Investment history loaded", result)
}

// Portfolio returns the signed user's portfolio classification
// @Summary Portfolio
// @Description Amount-weighted grade, earning rate and category
// @Tags Investments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /investments/portfolio [get]
func (h *InvestmentHandler) Portfolio(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	result, err := h.portfolioService.Get(c.Context(), userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to load portfolio")
	}

	return response.Success(c, "Portfolio loaded", fiber.Map{"results": result})
}

// Summary returns the signed user's financial summary
// @Summary Investment summary
// @Description Deposit, limits, overview and per-status breakdown
// @Tags Investments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /investments/summary [get]
func (h *InvestmentHandler) Summary(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	result, err := h.summaryService.Get(c.Context(), userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to load summary")
	}

	return response.Success(c, "Summary loaded", fiber.Map{"results": result})
}

// Export downloads the signed user's investment history as xlsx
// @Summary Export history
// @Description Download the full investment history as a spreadsheet
// @Tags Investments
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} binary
// @Router /investments/export [get]
func (h *InvestmentHandler) Export(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	rows, err := h.investmentService.ExportRows(c.Context(), userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to build export")
	}

	file, err := export.Write(rows)
	if err != nil {
		return response.InternalServerError(c, "Failed to build export")
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return response.InternalServerError(c, "Failed to build export")
	}

	filename := url.QueryEscape("[" + time.Now().Local().Format("2006-01-02") + "] 투자 내역 다운로드.xlsx")
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, "attachment;filename*=UTF-8''"+filename)
	return c.Send(buf.Bytes())
}

// DealInfo returns deal details for a subscription screen
// @Summary Deal information
// @Description Deals with subscribed amounts and offered options
// @Tags Investments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param deals query string true "Comma-separated deal ids"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /investments/deals [get]
func (h *InvestmentHandler) DealInfo(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	dealsParam := c.Query("deals")
	if dealsParam == "" {
		return response.BadRequestCode(c, domain.CodeMalformedRequest, "deals parameter is required")
	}

	var dealIDs []uint
	for _, raw := range strings.Split(dealsParam, ",") {
		id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32)
		if err != nil {
			return response.BadRequestCode(c, domain.CodeInvalidQueryValue, "deal ids must be numbers")
		}
		dealIDs = append(dealIDs, uint(id))
	}

	result, err := h.investmentService.GetDealInfo(c.Context(), userID, dealIDs)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidDeal):
			return response.BadRequestCode(c, domain.CodeInvalidDeal, "Unknown deal")
		case errors.Is(err, domain.ErrMalformedRequest):
			return response.BadRequestCode(c, domain.CodeMalformedRequest, "deals parameter is required")
		default:
			return response.InternalServerError(c, "Failed to load deal info")
		}
	}

	return response.Success(c, "Deal info loaded", fiber.Map{"results": result})
}

// SubscribeRequest represents a batch subscription request
type SubscribeRequest struct {
	Investments []services.SubscriptionRequest `json:"investments"`
}

// Subscribe places a batch of investments
// @Summary Subscribe to deals
// @Description Atomically place a batch of investments
// @Tags Investments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SubscribeRequest true "Investments"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /investments [post]
func (h *InvestmentHandler) Subscribe(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req SubscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequestCode(c, domain.CodeMalformedRequest, "Invalid request body")
	}

	err := h.investmentService.Subscribe(c.Context(), userID, req.Investments)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMalformedRequest):
			return response.BadRequestCode(c, domain.CodeMalformedRequest, "Each investment needs a deal id and a positive amount")
		case errors.Is(err, domain.ErrInvalidDeal):
			return response.BadRequestCode(c, domain.CodeInvalidDeal, "Deal not found or not open for subscription")
		case errors.Is(err, domain.ErrInvalidOption):
			return response.BadRequestCode(c, domain.CodeInvalidOption, "No schedule offered for the requested amount")
		case errors.Is(err, domain.ErrDuplicateInvestment):
			return response.BadRequestCode(c, domain.CodeDuplicateInvestment, "Deal already subscribed")
		default:
			return response.InternalServerError(c, "Failed to place investments")
		}
	}

	return response.Created(c, "Investments placed successfully", nil)
}
