package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/vemre-aremu/hrpay-backend-go/internal/domain/user"
	"github.com/vemre-aremu/hrpay-backend-go/internal/handler/http/response"
)

func roleFromContext(r *http.Request) (user.Role, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", false
	}
	return user.Role(roleStr), true
}

// AdminOnly requires the ADMIN role
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromContext(r)
		if !ok || role != user.RoleAdmin {
			response.HandleError(w, user.ErrAdminAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// AdminOrHR requires the ADMIN or HR role
func AdminOrHR(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromContext(r)
		if !ok || (role != user.RoleAdmin && role != user.RoleHR) {
			response.HandleError(w, user.ErrAdminOrHRRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// FinanceAccess requires the ADMIN or FINANCE role; payroll approval and
// exports go through here
func FinanceAccess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromContext(r)
		if !ok || (role != user.RoleAdmin && role != user.RoleFinance) {
			response.HandleError(w, user.ErrFinanceAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
