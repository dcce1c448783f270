package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"tipjar/internal/models"
	"tipjar/internal/repositories"
	"tipjar/internal/validation"
)

// Maximum number of ranked entries returned per leaderboard.
const MaxEntries = 100

// Service errors
var (
	ErrNotFound     = errors.New("leaderboard not found")
	ErrNotOwner     = errors.New("leaderboard belongs to another user")
	ErrPrivateBoard = errors.New("leaderboard is private")
)

// CreateRequest describes a new or updated leaderboard.
type CreateRequest struct {
	Title    string    `json:"title"`
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
	Public   bool      `json:"public"`
}

// EntryCache is the cache layer for computed rankings.
type EntryCache interface {
	CacheLeaderboardEntries(ctx context.Context, leaderboardID uint, entries []models.LeaderboardEntry) error
	GetLeaderboardEntries(ctx context.Context, leaderboardID uint) ([]models.LeaderboardEntry, error)
}

// Service manages leaderboards and their computed rankings.
type Service interface {
	Create(ctx context.Context, creatorID uint, req CreateRequest) (*models.Leaderboard, error)
	Update(ctx context.Context, creatorID, id uint, req CreateRequest) (*models.Leaderboard, error)
	Delete(ctx context.Context, creatorID, id uint) error
	List(ctx context.Context, limit, offset int) ([]models.Leaderboard, error)
	Entries(ctx context.Context, viewerID, id uint) ([]models.LeaderboardEntry, error)
}

type service struct {
	boards repositories.LeaderboardRepository
	tips   repositories.TipRepository
	cache  EntryCache
}

// NewService creates a new leaderboard service
func NewService(
	boards repositories.LeaderboardRepository,
	tips repositories.TipRepository,
	cache EntryCache,
) Service {
	if boards == nil {
		panic("leaderboard repository is required")
	}
	if tips == nil {
		panic("tip repository is required")
	}

	return &service{boards: boards, tips: tips, cache: cache}
}

func (s *service) Create(ctx context.Context, creatorID uint, req CreateRequest) (*models.Leaderboard, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	lb := &models.Leaderboard{
		CreatorID: creatorID,
		Title:     req.Title,
		StartsAt:  req.StartsAt,
		EndsAt:    req.EndsAt,
		Public:    req.Public,
	}
	if err := s.boards.Create(lb); err != nil {
		return nil, err
	}
	return lb, nil
}

func (s *service) Update(ctx context.Context, creatorID, id uint, req CreateRequest) (*models.Leaderboard, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	lb, err := s.getOwned(creatorID, id)
	if err != nil {
		return nil, err
	}

	lb.Title = req.Title
	lb.StartsAt = req.StartsAt
	lb.EndsAt = req.EndsAt
	lb.Public = req.Public
	if err := s.boards.Update(lb); err != nil {
		return nil, err
	}
	return lb, nil
}

func (s *service) Delete(ctx context.Context, creatorID, id uint) error {
	if _, err := s.getOwned(creatorID, id); err != nil {
		return err
	}
	return s.boards.Delete(id)
}

func (s *service) List(ctx context.Context, limit, offset int) ([]models.Leaderboard, error) {
	return s.boards.ListPublic(limit, offset)
}

func (s *service) Entries(ctx context.Context, viewerID, id uint) ([]models.LeaderboardEntry, error) {
	lb, err := s.boards.GetByID(id)
	if err != nil {
		if err == repositories.ErrLeaderboardNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !lb.Public && lb.CreatorID != viewerID {
		return nil, ErrPrivateBoard
	}

	if s.cache != nil {
		if entries, err := s.cache.GetLeaderboardEntries(ctx, id); err == nil {
			return entries, nil
		}
	}

	totals, err := s.tips.TotalsByTipper(lb.StartsAt, lb.EndsAt, MaxEntries)
	if err != nil {
		return nil, fmt.Errorf("failed to compute leaderboard: %w", err)
	}

	entries := make([]models.LeaderboardEntry, len(totals))
	for i, total := range totals {
		entries[i] = models.LeaderboardEntry{
			Rank:        i + 1,
			UserID:      total.TipperID,
			Name:        total.Name,
			TotalAmount: total.TotalAmount,
			TipCount:    total.TipCount,
		}
	}

	if s.cache != nil {
		if err := s.cache.CacheLeaderboardEntries(ctx, id, entries); err != nil {
			log.Printf("failed to cache leaderboard %d: %v", id, err)
		}
	}
	return entries, nil
}

func (s *service) getOwned(creatorID, id uint) (*models.Leaderboard, error) {
	lb, err := s.boards.GetByID(id)
	if err != nil {
		if err == repositories.ErrLeaderboardNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if lb.CreatorID != creatorID {
		return nil, ErrNotOwner
	}
	return lb, nil
}

func validateRequest(req CreateRequest) error {
	if req.Title == "" || len(req.Title) > validation.MaxTitleLength {
		return errors.New("title must be between 1 and 120 characters")
	}
	return validation.ValidatePeriod(req.StartsAt, req.EndsAt)
}
