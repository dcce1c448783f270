package handlers

import (
	"errors"

	"tipjar/internal/middleware"
	"tipjar/internal/services/rates"
	"tipjar/internal/services/topup"

	"github.com/gofiber/fiber/v2"
)

type TopUpHandler struct {
	topUpService topup.Service
}

func NewTopUpHandler(topUpService topup.Service) *TopUpHandler {
	return &TopUpHandler{topUpService: topUpService}
}

// TopUp charges a card and credits the wallet with sats
func (h *TopUpHandler) TopUp(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	var req topup.Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	record, err := h.topUpService.TopUp(c.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, topup.ErrInvalidAmount):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, rates.ErrRateUnavailable):
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "No exchange rate available"})
		case errors.Is(err, topup.ErrCardDeclined):
			return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{"error": "Card charge failed"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Top-up failed"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"amount_sats":   record.AmountSats,
		"fiat_amount":   record.FiatAmount,
		"fiat_currency": record.FiatCurrency,
	})
}

// History lists the user's past top-ups
func (h *TopUpHandler) History(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	list, err := h.topUpService.History(c.Context(), userID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list top-ups"})
	}
	return c.JSON(fiber.Map{"topups": list})
}
