package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"signcraft/internal/domain"
	"signcraft/internal/dto"
	apperrors "signcraft/internal/errors"
)

const minPasswordLength = 8

type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	CreateUser(ctx context.Context, username, password, fullName, role string) (*domain.User, error)
	DeleteUser(ctx context.Context, id uint) error
}

type UserController struct {
	service UserService
	logger  *zap.Logger
}

func NewUserController(service UserService, logger *zap.Logger) *UserController {
	return &UserController{
		service: service,
		logger:  logger,
	}
}

func (c *UserController) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	users, err := c.service.ListUsers(r.Context())
	if err != nil {
		logger.Error("listing users failed", zap.Error(err))
		c.writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error":   "SOURCE_UNAVAILABLE",
			"message": "user data could not be retrieved",
		})
		return
	}

	c.writeJSON(w, http.StatusOK, dto.UserListResponse{Users: dto.NewUserDTOs(users)})
}

func (c *UserController) HandleCreateUser(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if validationErr := validateCreateUserRequest(req); validationErr != nil {
		ve, _ := apperrors.IsValidationError(validationErr)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	user, err := c.service.CreateUser(r.Context(), req.Username, req.Password, req.FullName, req.Role)
	if err != nil {
		if ve, ok := apperrors.IsValidationError(err); ok {
			c.writeValidationError(w, ve.Message, ve.Details...)
			return
		}
		logger.Error("creating user failed", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "INTERNAL_ERROR",
			"message": "an unexpected error occurred",
		})
		return
	}

	c.writeJSON(w, http.StatusCreated, dto.CreateUserResponse{
		Success: true,
		User:    dto.NewUserDTO(*user),
	})
}

func (c *UserController) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	rawID := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(rawID, 10, 32)
	if err != nil {
		c.writeValidationError(w, "invalid user id", apperrors.ValidationDetail{
			Field:   "id",
			Message: "id must be a positive integer",
		})
		return
	}

	if err := c.service.DeleteUser(r.Context(), uint(id)); err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			c.writeJSON(w, http.StatusNotFound, map[string]string{
				"error":   "NOT_FOUND",
				"message": err.Error(),
			})
			return
		}
		logger.Error("deleting user failed", zap.Uint64("id", id), zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "INTERNAL_ERROR",
			"message": "an unexpected error occurred",
		})
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func validateCreateUserRequest(req dto.CreateUserRequest) error {
	var details []apperrors.ValidationDetail

	if req.Username == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "username",
			Message: "username is required",
		})
	}
	if len(req.Password) < minPasswordLength {
		details = append(details, apperrors.ValidationDetail{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}
	if !domain.IsValidUserRole(req.Role) {
		details = append(details, apperrors.ValidationDetail{
			Field:   "role",
			Message: "role must be admin or employee",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}

	return nil
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *UserController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *UserController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
