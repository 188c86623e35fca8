package adapthttp

import (
	"context"
	"log"
	"net/http"
	"time"

	"evidencias/internal/domain"
)

type contextKey string

const (
	identityContextKey  contextKey = "identity"
	tokenContextKey     contextKey = "token"
	sessionIDContextKey contextKey = "sessionID"
)

const sessionCookieName = "session"

// requireAuth is the route guard: it restores the session from the cookie
// and rejects any request without a usable identity. A session whose token
// never decoded counts as logged out.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		identity, token, err := s.auth.Validate(r.Context(), cookie.Value)
		if err != nil || identity == nil {
			clearSessionCookie(w)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		ctx := context.WithValue(r.Context(), identityContextKey, identity)
		ctx = context.WithValue(ctx, tokenContextKey, token)
		ctx = context.WithValue(ctx, sessionIDContextKey, cookie.Value)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func identityFromContext(r *http.Request) *domain.Identity {
	identity, _ := r.Context().Value(identityContextKey).(*domain.Identity)
	return identity
}

func tokenFromContext(r *http.Request) string {
	token, _ := r.Context().Value(tokenContextKey).(string)
	return token
}

func sessionIDFromContext(r *http.Request) string {
	id, _ := r.Context().Value(sessionIDContextKey).(string)
	return id
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// loggingMiddleware logs one line per request: method, path, status, duration.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Printf("%s %s %d %s", r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}
