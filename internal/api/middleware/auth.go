package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/B3IM4R/catalogo-peliculas-favoritas/internal/api/authctx"
	"github.com/B3IM4R/catalogo-peliculas-favoritas/internal/api/handlers"
	"github.com/B3IM4R/catalogo-peliculas-favoritas/internal/domain"
	"github.com/B3IM4R/catalogo-peliculas-favoritas/internal/service"
)

// Auth resolves the bearer token to a full user or rejects the request
// with a 401 before any handler runs. Missing header, garbled token,
// expired token and vanished user each get their own message.
func Auth(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				log.Printf("ERROR [middleware.Auth] missing authorization header")
				handlers.RespondError(w, http.StatusUnauthorized, "token missing")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				log.Printf("ERROR [middleware.Auth] invalid authorization header format")
				handlers.RespondError(w, http.StatusUnauthorized, "token missing")
				return
			}

			userID, err := authService.ValidateToken(parts[1])
			if err != nil {
				log.Printf("ERROR [middleware.Auth] token validation failed: %v", err)
				if errors.Is(err, domain.ErrTokenExpired) {
					handlers.RespondError(w, http.StatusUnauthorized, "token expired")
				} else {
					handlers.RespondError(w, http.StatusUnauthorized, "invalid token")
				}
				return
			}

			// The token can outlive its account; a valid signature alone
			// is not proof the user still exists.
			user, err := authService.GetUserByID(r.Context(), userID)
			if err != nil {
				log.Printf("ERROR [middleware.Auth] user lookup failed: %v", err)
				handlers.RespondError(w, http.StatusUnauthorized, "user not found")
				return
			}

			next.ServeHTTP(w, r.WithContext(authctx.WithUser(r.Context(), user)))
		})
	}
}
