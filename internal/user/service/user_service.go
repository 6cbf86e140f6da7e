package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"signcraft/internal/domain"
	apperrors "signcraft/internal/errors"
)

const bcryptCost = 12

type UserRepository interface {
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Insert(ctx context.Context, user domain.User) (uint, error)
	DeleteByID(ctx context.Context, id uint) error
}

type UserService struct {
	repo   UserRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewUserService(repo UserRepository, logger *zap.Logger) *UserService {
	return &UserService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.NewSourceUnavailableError("user source unavailable", err)
	}
	return users, nil
}

// CreateUser hashes the password with bcrypt and rejects duplicate
// usernames before inserting.
func (s *UserService) CreateUser(ctx context.Context, username, password, fullName, role string) (*domain.User, error) {
	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return nil, apperrors.NewValidationError("username already taken", apperrors.ValidationDetail{
			Field:   "username",
			Message: fmt.Sprintf("username %s already exists", username),
		})
	} else if _, ok := apperrors.IsNotFoundError(err); !ok {
		return nil, apperrors.NewInternalError("checking username uniqueness", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError("hashing password", err)
	}

	user := domain.User{
		Username:     username,
		FullName:     fullName,
		Role:         role,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	}

	id, err := s.repo.Insert(ctx, user)
	if err != nil {
		return nil, apperrors.NewInternalError("persisting user", err)
	}
	user.ID = id

	s.logger.Info("user created",
		zap.String("username", user.Username),
		zap.String("role", user.Role),
	)

	return &user, nil
}

// VerifyPassword compares a candidate password against the stored
// bcrypt digest.
func (s *UserService) VerifyPassword(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.NewNotFoundError("invalid credentials")
	}

	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}

	s.logger.Info("user deleted", zap.Uint("id", id))
	return nil
}
