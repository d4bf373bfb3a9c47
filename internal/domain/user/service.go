package user

import "context"

type UserService interface {
	// Create registers a staff account with a bcrypt-hashed password
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	List(ctx context.Context) ([]UserResponse, error)
}
