package usecase

import (
	"context"
	"fmt"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type UserService interface {
	Register(ctx context.Context, req *request.RegisterUserRequest) (*response.UserResponse, error)
}

type userService struct {
	repo repository.UserRepository
	log  *zap.Logger
}

func NewUserService(repo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) Register(ctx context.Context, req *request.RegisterUserRequest) (*response.UserResponse, error) {
	// Validation happens before any database access, and the raw password
	// is never logged.
	if verr := validateRequest(req); verr != nil {
		s.log.Warn("Register validation failed",
			zap.String("username", req.Username),
			zap.Any("errors", verr.Fields),
		)
		return nil, verr
	}

	var dob *time.Time
	if req.DOB != nil {
		parsed, err := time.Parse("2006-01-02", *req.DOB)
		if err != nil {
			return nil, &ValidationError{Fields: map[string]string{
				"DOB": "Must be a date in 2006-01-02 format",
			}}
		}
		dob = &parsed
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		Username:     req.Username,
		PasswordHash: hash,
		Name:         req.Name,
		DOB:          dob,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if err != repository.ErrDuplicateUsername {
			s.log.Error("Failed to create user",
				zap.Error(err),
				zap.String("username", req.Username),
			)
		}
		return nil, fmt.Errorf("register user: %w", err)
	}

	s.log.Info("User registered",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username),
	)

	resp := response.UserToResponse(user)
	return &resp, nil
}
