package middleware

import (
	"crypto/subtle"
	"net/http"
)

// AdminSecret guards administrative endpoints with a static shared-secret
// header. The comparison is constant-time.
func AdminSecret(header, secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(header)
			if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
				http.Error(w, `{"error":{"code":"UNAUTHORIZED","message":"Invalid admin secret"}}`, http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
