package middleware

import (
	"net/http"

	"tayarpro-be/internal/auth"
)

// Authenticator parses the bearer token when present and stores the
// identity in the request context. Requests without a valid token pass
// through unauthenticated; handlers decide whether that is acceptable.
func Authenticator(tm *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := auth.ExtractAccessToken(r)
			if tokenStr == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := tm.Parse(tokenStr)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := auth.SetUserContext(r.Context(), claims.AccountID, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
