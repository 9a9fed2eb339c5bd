package usecase

import (
	"context"
	"fmt"
	"time"

	"venue-booking/internal/data/repository"
	"venue-booking/internal/dto/request"
	"venue-booking/internal/dto/response"
	"venue-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	Me(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
	Profile(ctx context.Context, userID uuid.UUID, tab string) (*response.ProfileResponse, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user := s.repo.User.FindByEmail(ctx, req.Email)
	if user == nil {
		s.log.Warn("User not found for login", zap.String("email", req.Email))
		return nil, fmt.Errorf("invalid credentials")
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Wrong password", zap.String("email", req.Email))
		return nil, fmt.Errorf("invalid credentials")
	}

	expiry := time.Duration(s.config.Session.ExpiryHours) * time.Hour
	session := repository.NewSession(user.ID, expiry)
	s.repo.Session.Create(ctx, session)

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)),
	)

	return &response.AuthResponse{
		Token:     session.Token.String(),
		ExpiresAt: session.ExpiresAt,
		User:      response.UserToResponse(user),
	}, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if !s.repo.Session.Revoke(ctx, token) {
		return fmt.Errorf("session not found or already revoked")
	}

	s.log.Info("User logged out")
	return nil
}

func (s *authService) Me(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user := s.repo.User.FindByID(ctx, userID)
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

// Profile serves the profile page; the tab query parameter selects which
// section is populated.
func (s *authService) Profile(ctx context.Context, userID uuid.UUID, tab string) (*response.ProfileResponse, error) {
	user := s.repo.User.FindByID(ctx, userID)
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	switch tab {
	case "bookings":
		bookings := s.repo.Booking.FindByUser(ctx, userID)
		resps := make([]response.BookingResponse, len(bookings))
		for i, b := range bookings {
			resps[i] = response.BookingToResponse(b)
		}
		return &response.ProfileResponse{Tab: tab, Bookings: resps}, nil

	case "", "account":
		account := response.UserToResponse(user)
		return &response.ProfileResponse{Tab: "account", Account: &account}, nil

	default:
		return nil, fmt.Errorf("invalid profile tab %q", tab)
	}
}
