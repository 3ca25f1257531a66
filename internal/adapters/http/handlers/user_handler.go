package handlers

import (
	"errors"
	"strconv"

	"github.com/Pratiable/22percent/internal/core/services"
	"github.com/Pratiable/22percent/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles user profile endpoints
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Me returns the signed user's profile
// @Summary My profile
// @Description Get the signed user's profile
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /users/me [get]
func (h *UserHandler) Me(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	profile, err := h.userService.GetProfile(c.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to load profile")
	}

	return response.Success(c, "Profile loaded", fiber.Map{"user": profile})
}

// UpdateDepositAccount changes the signed user's payout account
// @Summary Update deposit account
// @Description Change the signed user's deposit bank and account
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.UpdateDepositAccountInput true "Deposit account"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /users/me/deposit-account [put]
func (h *UserHandler) UpdateDepositAccount(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var input services.UpdateDepositAccountInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if input.DepositBank == "" || input.DepositAccount == "" {
		return response.BadRequest(c, "Deposit bank and account are required")
	}

	profile, err := h.userService.UpdateDepositAccount(c.Context(), userID, &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBankNotFound):
			return response.BadRequest(c, "Unknown deposit bank code")
		case errors.Is(err, services.ErrUserNotFound):
			return response.NotFound(c, "User not found")
		default:
			return response.InternalServerError(c, "Failed to update deposit account")
		}
	}

	return response.Success(c, "Deposit account updated", fiber.Map{"user": profile})
}

// List lists all users (admin)
// @Summary List users
// @Description List users with pagination (admin only)
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response
// @Router /users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	users, total, err := h.userService.List(c.Context(), (page-1)*limit, limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list users")
	}

	return response.Success(c, "Users loaded", fiber.Map{
		"users": users,
		"total": total,
	})
}

// Banks lists the supported deposit banks
// @Summary List banks
// @Description List the supported deposit banks
// @Tags Users
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /banks [get]
func (h *UserHandler) Banks(c *fiber.Ctx) error {
	banks, err := h.userService.ListBanks(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list banks")
	}
	return response.Success(c, "Banks loaded", fiber.Map{"banks": banks})
}
