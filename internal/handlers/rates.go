package handlers

import (
	"strings"

	"tipjar/internal/services/rates"

	"github.com/gofiber/fiber/v2"
)

type RatesHandler struct {
	rateService rates.Service
}

func NewRatesHandler(rateService rates.Service) *RatesHandler {
	return &RatesHandler{rateService: rateService}
}

// SetRate stores the fiat price of one BTC (admin only)
func (h *RatesHandler) SetRate(c *fiber.Ctx) error {
	var input struct {
		Currency string  `json:"currency"`
		BTCPrice float64 `json:"btc_price"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if strings.TrimSpace(input.Currency) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "currency is required"})
	}

	if err := h.rateService.SetRate(c.Context(), input.Currency, input.BTCPrice); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "rate updated"})
}

// GetRate returns the stored rate for a currency
func (h *RatesHandler) GetRate(c *fiber.Ctx) error {
	rate, err := h.rateService.GetRate(c.Context(), c.Params("currency"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No rate for currency"})
	}
	return c.JSON(fiber.Map{
		"currency":  strings.ToUpper(c.Params("currency")),
		"btc_price": rate,
	})
}
