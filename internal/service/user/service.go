package user

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/vemre-aremu/hrpay-backend-go/internal/domain/audit"
	"github.com/vemre-aremu/hrpay-backend-go/internal/domain/user"
)

func actorFromContext(ctx context.Context) *string {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil
	}
	if id, ok := claims["user_id"].(string); ok {
		return &id
	}
	return nil
}

type UserServiceImpl struct {
	user.UserRepository
	auditService audit.AuditService
}

func NewUserService(userRepo user.UserRepository, auditService audit.AuditService) user.UserService {
	return &UserServiceImpl{
		UserRepository: userRepo,
		auditService:   auditService,
	}
}

// Create implements user.UserService.
func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.UserRepository.Create(ctx, user.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         user.Role(req.Role),
		IsActive:     true,
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	s.auditService.Record(ctx, actorFromContext(ctx), audit.ActionCreate, "user", &created.ID,
		fmt.Sprintf("created %s account %s", created.Role, created.Username))

	return toResponse(created), nil
}

// List implements user.UserService.
func (s *UserServiceImpl) List(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, toResponse(u))
	}

	return responses, nil
}

func toResponse(u user.User) user.UserResponse {
	return user.UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     string(u.Role),
		IsActive: u.IsActive,
	}
}
