package serviceimpl

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"tasks-api/domain/dto"
	"tasks-api/domain/models"
	"tasks-api/domain/repositories"
	"tasks-api/domain/services"
	"tasks-api/pkg/logger"
	"tasks-api/pkg/token"
	"tasks-api/pkg/utils"
)

type UserServiceImpl struct {
	userRepo repositories.UserRepository
	tokens   *token.Manager
}

func NewUserService(userRepo repositories.UserRepository, tokens *token.Manager) services.UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	_, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err == nil {
		logger.WarnContext(ctx, "Registration rejected, email taken", "email", req.Email)
		return nil, services.ErrEmailTaken
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		logger.ErrorContext(ctx, "Failed to check email uniqueness", "error", err)
		return nil, err
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to hash password", "error", err)
		return nil, err
	}

	user := &models.User{
		ID:        uuid.New(),
		Email:     req.Email,
		Password:  hashedPassword,
		FullName:  req.FullName,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		logger.ErrorContext(ctx, "Failed to create user", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "User registered", "user_id", user.ID, "email", user.Email)

	return user, nil
}

// Login verifies credentials and issues a bearer token. An unknown
// email and a wrong password produce the same error.
func (s *UserServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.WarnContext(ctx, "Login failed, unknown email", "email", req.Username)
			return "", nil, services.ErrInvalidCredentials
		}
		logger.ErrorContext(ctx, "Failed to look up user", "error", err)
		return "", nil, err
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		logger.WarnContext(ctx, "Login failed, wrong password", "user_id", user.ID)
		return "", nil, services.ErrInvalidCredentials
	}

	accessToken, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to issue token", "user_id", user.ID, "error", err)
		return "", nil, err
	}

	logger.InfoContext(ctx, "User logged in", "user_id", user.ID)

	return accessToken, user, nil
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, services.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
