package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"clothing-shop/internal/data/entity"
	"clothing-shop/internal/data/repository"
	"clothing-shop/pkg/utils"

	"go.uber.org/zap"
)

// Authenticate validates the bearer token, loads the staff account behind
// its subject and stores the identity in the request context. Disabled
// accounts are rejected even with a valid token.
func Authenticate(users repository.UserRepository, jwts *utils.JWTManager, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Token de autenticação não fornecido.")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				utils.ResponseUnauthorized(w, "Formato de token inválido. Use: Bearer <token>")
				return
			}

			email, err := jwts.Validate(parts[1])
			if err != nil {
				logger.Warn("Rejected token", zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, utils.ErrInvalidToken.Error())
				return
			}

			user, err := users.FindByEmail(r.Context(), email)
			if err != nil {
				logger.Error("Failed to load user for token",
					zap.Error(err),
					zap.String("email", email))
				utils.ResponseInternalError(w, "Erro interno do servidor.")
				return
			}

			if user == nil || !user.IsActive {
				logger.Warn("Token for unknown or inactive user", zap.String("email", email))
				utils.ResponseUnauthorized(w, utils.ErrInvalidToken.Error())
				return
			}

			ctx := utils.SetUserContext(r.Context(), user.ID, user.Email, string(user.Role))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRoles gates a route to the given staff roles. With no roles any
// authenticated user passes.
func RequireRoles(roles ...entity.UserRole) func(http.Handler) http.Handler {
	allowed := make(map[entity.UserRole]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Token de autenticação não fornecido.")
				return
			}

			if len(allowed) > 0 && !allowed[entity.UserRole(role)] {
				utils.ResponseForbidden(w, fmt.Sprintf("Permissão negada para o tipo de usuário '%s'.", role))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
