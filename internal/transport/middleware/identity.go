package middleware

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/pinmoji/internal/domain"
	"github.com/heartmarshall/pinmoji/pkg/ctxutil"
)

type currentUser interface {
	CurrentUser() (domain.User, bool)
}

// Identity tags the request context with the signed-in user's uid, if any.
// Requests are never rejected here; actions that need a user fail on their own.
func Identity(users currentUser) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := users.CurrentUser()
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			ctx := ctxutil.WithUserID(r.Context(), user.UID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BearerToken returns the token of an "Authorization: Bearer" header.
// The scheme is matched case-insensitively.
func BearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
