package handlers

import (
	"errors"

	"tipjar/internal/middleware"
	"tipjar/internal/services/tips"
	"tipjar/internal/utils"
	"tipjar/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type TipHandler struct {
	tipService tips.Service
}

func NewTipHandler(tipService tips.Service) *TipHandler {
	return &TipHandler{tipService: tipService}
}

// Create funds a new tip from the tipper's wallet
func (h *TipHandler) Create(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	var req tips.CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if len(req.Note) > validation.MaxNoteLength {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Note too long"})
	}

	created, err := h.tipService.Create(c.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, tips.ErrInsufficientFunds):
			return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{"error": "Insufficient balance"})
		case errors.Is(err, tips.ErrAmountRequired),
			errors.Is(err, validation.ErrAmountTooSmall),
			errors.Is(err, validation.ErrAmountTooLarge):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create tip"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"tip":        created.Tip,
		"passphrase": created.Passphrase,
		"claim_url":  created.ClaimURL,
		"amount":     utils.FormatSats(created.Tip.Amount),
	})
}

// Show returns the public view of a tip by claim reference
func (h *TipHandler) Show(c *fiber.Ctx) error {
	tip, err := h.tipService.GetByClaimReference(c.Context(), c.Params("ref"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tip not found"})
	}

	// The passphrase hash never leaves the server.
	return c.JSON(fiber.Map{
		"amount":     tip.Amount,
		"note":       tip.Note,
		"status":     tip.Status,
		"expires_at": tip.ExpiresAt,
	})
}

// Claim redeems a tip with its passphrase
func (h *TipHandler) Claim(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	var input struct {
		Passphrase string `json:"passphrase"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	tip, err := h.tipService.Claim(c.Context(), userID, c.Params("ref"), input.Passphrase)
	if err != nil {
		switch {
		case errors.Is(err, tips.ErrTipNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tip not found"})
		case errors.Is(err, tips.ErrWrongPassphrase):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Wrong passphrase"})
		case errors.Is(err, tips.ErrSelfClaim),
			errors.Is(err, tips.ErrTipExpired),
			errors.Is(err, tips.ErrNotClaimable):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to claim tip"})
		}
	}

	return c.JSON(fiber.Map{
		"amount": tip.Amount,
		"note":   tip.Note,
	})
}

// Reclaim refunds the tipper's expired unclaimed tips
func (h *TipHandler) Reclaim(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	total, err := h.tipService.Reclaim(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to reclaim tips"})
	}
	return c.JSON(fiber.Map{"reclaimed": total})
}

// List returns the authenticated user's sent tips
func (h *TipHandler) List(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	list, err := h.tipService.GetByTipper(c.Context(), userID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list tips"})
	}
	return c.JSON(fiber.Map{"tips": list})
}
