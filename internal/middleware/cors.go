package middleware

import (
	"net/http"
	"strings"

	"github.com/gorilla/handlers"
)

// CORS accepts requests from any origin. Preflights are granted whatever
// headers they ask for, the same as a permissive express cors().
func CORS() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allowed := []string{"Content-Type", RequestIDHeader}
			for _, h := range strings.Split(r.Header.Get("Access-Control-Request-Headers"), ",") {
				if h = strings.TrimSpace(h); h != "" {
					allowed = append(allowed, h)
				}
			}

			handlers.CORS(
				handlers.AllowedOrigins([]string{"*"}),
				handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
				handlers.AllowedHeaders(allowed),
				handlers.ExposedHeaders([]string{RequestIDHeader}),
			)(next).ServeHTTP(w, r)
		})
	}
}
