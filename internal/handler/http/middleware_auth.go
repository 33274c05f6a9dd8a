package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dkuznetsov/legacy-keeper/internal/logger"
	"github.com/dkuznetsov/legacy-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces session authentication.
//
// The session token is looked up in the session cookie first and in the
// "Authorization: Bearer" header as a fallback, so both browser sessions
// and API clients work. On success the token's username and display name
// are stored in the request context under [utils.UsernameCtxKey] and
// [utils.DisplayNameCtxKey] before delegating to the next handler.
//
// Requests are rejected with HTTP 401 Unauthorized when no credential is
// present, the header is malformed, or the token fails validation
// (expired, wrong issuer, bad signature).
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := h.sessionTokenFromRequest(r)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		// Store the identity in the context so downstream handlers can
		// retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UsernameCtxKey, token.Username)
		ctx = context.WithValue(ctx, utils.DisplayNameCtxKey, token.DisplayName)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionTokenFromRequest finds the raw session token: the session cookie
// wins, the bearer header is the fallback.
func (h *Handler) sessionTokenFromRequest(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(h.cookie.Name); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrNoSessionCredentials
	}

	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err)
	}

	return tokenString, nil
}
