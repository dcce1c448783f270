package handlers

import (
	"errors"
	"strconv"

	"tipjar/internal/middleware"
	"tipjar/internal/services/leaderboard"
	"tipjar/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type LeaderboardHandler struct {
	leaderboardService leaderboard.Service
}

func NewLeaderboardHandler(leaderboardService leaderboard.Service) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: leaderboardService}
}

// Create adds a new leaderboard owned by the authenticated user
func (h *LeaderboardHandler) Create(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	var req leaderboard.CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	lb, err := h.leaderboardService.Create(c.Context(), userID, req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":    lb.ID,
		"title": lb.Title,
		"url":   utils.LeaderboardURL(lb.ID),
	})
}

// Update edits a leaderboard the user owns
func (h *LeaderboardHandler) Update(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid leaderboard id"})
	}

	var req leaderboard.CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	lb, err := h.leaderboardService.Update(c.Context(), userID, id, req)
	if err != nil {
		return leaderboardError(c, err)
	}
	return c.JSON(lb)
}

// Delete removes a leaderboard the user owns
func (h *LeaderboardHandler) Delete(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid leaderboard id"})
	}

	if err := h.leaderboardService.Delete(c.Context(), userID, id); err != nil {
		return leaderboardError(c, err)
	}
	return c.JSON(fiber.Map{"message": "deleted"})
}

// List returns public leaderboards
func (h *LeaderboardHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	list, err := h.leaderboardService.List(c.Context(), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list leaderboards"})
	}
	return c.JSON(fiber.Map{"leaderboards": list})
}

// Entries returns the ranked entries of a leaderboard
func (h *LeaderboardHandler) Entries(c *fiber.Ctx) error {
	viewerID, _ := middleware.UserID(c)

	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid leaderboard id"})
	}

	entries, err := h.leaderboardService.Entries(c.Context(), viewerID, id)
	if err != nil {
		return leaderboardError(c, err)
	}
	return c.JSON(fiber.Map{"entries": entries})
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	return uint(id), err
}

func leaderboardError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, leaderboard.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Leaderboard not found"})
	case errors.Is(err, leaderboard.ErrNotOwner), errors.Is(err, leaderboard.ErrPrivateBoard):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
}
