package user

import (
	"errors"
	"fmt"

	"tipjar/internal/models"
	"tipjar/internal/repositories"
	"tipjar/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

var ErrEmailTaken = errors.New("email already registered")

// RegisterRequest carries the sign-up form fields.
type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type Service interface {
	Register(req RegisterRequest) (*models.User, error)
	GetProfile(userID uint) (*models.User, error)
}

type service struct {
	userRepo   repositories.UserRepository
	walletRepo repositories.WalletRepository
}

func NewService(userRepo repositories.UserRepository, walletRepo repositories.WalletRepository) Service {
	return &service{
		userRepo:   userRepo,
		walletRepo: walletRepo,
	}
}

func (s *service) Register(req RegisterRequest) (*models.User, error) {
	if err := validation.ValidateEmail(req.Email); err != nil {
		return nil, err
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return nil, err
	}
	if req.Name == "" {
		return nil, errors.New("name is required")
	}

	if _, err := s.userRepo.GetByEmail(req.Email); err == nil {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:    req.Email,
		Name:     req.Name,
		Password: string(hashed),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	// Every user gets a sats wallet at sign-up.
	wallet := &models.Wallet{UserID: user.ID}
	if err := s.walletRepo.Create(wallet); err != nil {
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}
	user.WalletID = &wallet.ID
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *service) GetProfile(userID uint) (*models.User, error) {
	return s.userRepo.GetByID(userID)
}
