package handlers

import (
	"errors"

	"tipjar/internal/middleware"
	"tipjar/internal/services/withdrawal"
	"tipjar/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type WithdrawalHandler struct {
	withdrawalService withdrawal.Service
}

func NewWithdrawalHandler(withdrawalService withdrawal.Service) *WithdrawalHandler {
	return &WithdrawalHandler{withdrawalService: withdrawalService}
}

// Preview shows which tips would be withdrawn and the fee, without executing
func (h *WithdrawalHandler) Preview(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	preview, err := h.withdrawalService.Preview(c.Context(), userID)
	if err != nil {
		return withdrawalError(c, err)
	}

	return c.JSON(fiber.Map{
		"tips":             preview.Tips,
		"total":            preview.Total,
		"fee":              preview.Fee,
		"payout":           preview.Payout,
		"payout_formatted": utils.FormatSats(preview.Payout),
	})
}

// Withdraw executes a withdrawal of the user's claimed tips
func (h *WithdrawalHandler) Withdraw(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	var input struct {
		Invoice string `json:"invoice"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	w, err := h.withdrawalService.Withdraw(c.Context(), userID, input.Invoice)
	if err != nil {
		return withdrawalError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":        w.ID,
		"total":     w.Total,
		"fee":       w.Fee,
		"tip_count": w.TipCount,
		"status":    w.Status,
	})
}

// History lists the user's past withdrawals
func (h *WithdrawalHandler) History(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	list, err := h.withdrawalService.History(c.Context(), userID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list withdrawals"})
	}
	return c.JSON(fiber.Map{"withdrawals": list})
}

func withdrawalError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, withdrawal.ErrNothingToWithdraw):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Nothing to withdraw"})
	case errors.Is(err, withdrawal.ErrFeeExceedsTotal):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Balance too small to cover the fee"})
	case errors.Is(err, withdrawal.ErrInsufficientBalance):
		return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{"error": "Insufficient balance"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Withdrawal failed"})
	}
}
