package middleware

import (
	"mime"
	"net/http"

	"movie-catalog/pkg/utils"
)

// RequireJSON rejects mutating requests whose body does not declare JSON,
// before any validation or decoding runs.
func RequireJSON() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			contentType := r.Header.Get("Content-Type")
			mediaType, _, err := mime.ParseMediaType(contentType)
			if err != nil || mediaType != "application/json" {
				utils.ResponseUnsupportedMediaType(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
