package http

import (
	"net/http"

	"github.com/pitabwire/translate"
)

// LanguageHTTPMiddleware is an HTTP middleware that extracts language
// preferences from the request and sets them in the context.
func LanguageHTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		l := translate.ExtractLanguageFromHTTPRequest(r)

		ctx := translate.ToContext(r.Context(), l)
		r = r.WithContext(ctx)

		next.ServeHTTP(w, r)
	})
}
