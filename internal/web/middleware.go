package web

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenSessionKey is the session slot holding the API access token.
const TokenSessionKey = "ol_access_token"

type tokenKey struct{}

// GetToken returns the bearer token of the current request, or the empty
// string for anonymous visitors.
func GetToken(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// SessionMiddleware loads the access token from the session cookie into the
// request context. An expired token is dropped on the spot so downstream
// calls go out anonymous instead of bouncing off a 401.
func SessionMiddleware(handler *Handler) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := handler.SessionManager.Load(r)
			token, err := session.GetString(TokenSessionKey)
			if err == nil && token != "" {
				if tokenExpired(token) {
					session.Remove(w, TokenSessionKey)
				} else {
					ctx := context.WithValue(r.Context(), tokenKey{}, token)
					r = r.WithContext(ctx)
				}
			}
			h.ServeHTTP(w, r)
		})
	}
}

// tokenExpired reads the exp claim without verifying the signature; the API
// is the one that actually validates the token, this only avoids sending a
// token that is known dead.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

// TokenTTL reports how long the token remains valid, for the redirect
// handler deciding whether the login is worth storing.
func TokenTTL(token string) time.Duration {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return 0
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return 0
	}
	return time.Until(exp.Time)
}
