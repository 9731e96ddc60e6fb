package httpx

import "net/http"

// RequireRole rejects authenticated requests whose session role does not
// match. It must run after AuthnMiddleware.
func RequireRole(role string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if roleFromCtx(r.Context()) != role {
				writeRoleError(w, role)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RFC 6750-flavoured error response for an insufficient role.
func writeRoleError(w http.ResponseWriter, required string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="insufficient_role", role="`+required+`"`)
	w.WriteHeader(http.StatusForbidden)
	_, _ = w.Write([]byte("insufficient_role"))
}
