package user

import "errors"

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrUsernameExists        = errors.New("username already exists")
	ErrAdminAccessRequired   = errors.New("admin access required")
	ErrAdminOrHRRequired     = errors.New("admin or HR access required")
	ErrFinanceAccessRequired = errors.New("finance access required")
)
