package service

import (
	"context"
	"errors"
	"strings"

	"github.com/almaspay/backend/internal/dto"
	apperrors "github.com/almaspay/backend/internal/errors"
	"github.com/almaspay/backend/internal/model"
	"github.com/almaspay/backend/internal/repository"
	ctxutil "github.com/almaspay/backend/pkg/context"
	"github.com/almaspay/backend/pkg/logger"
	"gorm.io/gorm"
)

type UserService struct {
	users  *repository.UserRepository
	tokens *TokenService
}

func NewUserService(users *repository.UserRepository, tokens *TokenService) *UserService {
	return &UserService{users: users, tokens: tokens}
}

// Register creates a new account and issues an access token
func (s *UserService) Register(ctx context.Context, req *dto.RegisterRequest) (*model.User, string, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "Register")

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, "", apperrors.ErrEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", apperrors.WrapError(apperrors.ErrInternal, err)
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, "", apperrors.WrapError(apperrors.ErrInternal, err)
	}

	user := &model.User{
		Email:     email,
		Password:  hash,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Company:   req.Company,
		Phone:     req.Phone,
		Role:      "user",
		IsActive:  true,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", apperrors.WrapError(apperrors.ErrInternal, err)
	}

	accessToken, err := s.tokens.IssueAccessToken(user)
	if err != nil {
		return nil, "", apperrors.WrapError(apperrors.ErrInternal, err)
	}

	logger.InfoWithContext(ctx, "User registered").
		Uint("user_id", user.ID).
		String("email", user.Email).
		Log()

	return user, accessToken, nil
}

// Login verifies credentials and issues both token families. Unknown email
// and wrong password fail identically.
func (s *UserService) Login(ctx context.Context, req *dto.LoginRequest) (*model.User, string, string, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "Login")

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", "", apperrors.ErrInvalidCredentials
		}
		return nil, "", "", apperrors.WrapError(apperrors.ErrInternal, err)
	}

	if !CheckPassword(user.Password, req.Password) {
		logger.WarnWithContext(ctx, "Login failed").
			String("email", email).
			Log()
		return nil, "", "", apperrors.ErrInvalidCredentials
	}

	accessToken, err := s.tokens.IssueAccessToken(user)
	if err != nil {
		return nil, "", "", apperrors.WrapError(apperrors.ErrInternal, err)
	}
	refreshToken, err := s.tokens.IssueRefreshToken(user)
	if err != nil {
		return nil, "", "", apperrors.WrapError(apperrors.ErrInternal, err)
	}

	// Best effort, a failed timestamp update never blocks login
	if err := s.users.UpdateLastLogin(ctx, user.ID); err != nil {
		logger.WarnWithContext(ctx, "Failed to record last login").
			Uint("user_id", user.ID).
			Err(err).
			Log()
	}

	logger.InfoWithContext(ctx, "User logged in").
		Uint("user_id", user.ID).
		String("email", user.Email).
		Log()

	return user, accessToken, refreshToken, nil
}

// Refresh exchanges a valid refresh token for a new access token
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "Refresh")

	claims, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return "", err
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrInvalidRefreshToken
		}
		return "", apperrors.WrapError(apperrors.ErrInternal, err)
	}

	accessToken, err := s.tokens.IssueAccessToken(user)
	if err != nil {
		return "", apperrors.WrapError(apperrors.ErrInternal, err)
	}

	return accessToken, nil
}

// GetProfile loads the current user
func (s *UserService) GetProfile(ctx context.Context, userID uint) (*model.User, error) {
	ctx = ctxutil.WithOperation(ctx, "service", "GetProfile")

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return user, nil
}
