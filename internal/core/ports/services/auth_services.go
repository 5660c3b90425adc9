package services

import (
	"context"

	"github.com/retailware/cashbox_backend/internal/core/domain"
	"github.com/retailware/cashbox_backend/internal/dto"
)

// UserSvcFacade manages user accounts and credential checks.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
