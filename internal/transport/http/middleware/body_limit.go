package middleware

import "net/http"

// BodyLimit caps request bodies at maxBytes. Reads past the cap make
// the underlying reader fail and json decoding surfaces it as a normal
// decode error, so handlers need no special casing. A non-positive cap
// disables the limit.
func BodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if maxBytes <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil && r.ContentLength != 0 {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}
