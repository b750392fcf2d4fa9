package httpx

import (
	"net/http"

	"github.com/google/uuid"
)

// HeaderRequestID is read from the incoming request and echoed on the
// response, so ids assigned by an upstream proxy survive end to end.
const HeaderRequestID = "X-Request-Id"

// RequestIDMiddleware tags every request with an id and makes it available
// to the access log and recovery middleware via the request context.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(HeaderRequestID, id)
		next.ServeHTTP(w, r.WithContext(ContextWithRequestID(r.Context(), id)))
	})
}
