package http

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5/middleware"
)

// Middleware defines the standard signature for an HTTP middleware.
type Middleware func(http.Handler) http.Handler

// Chain combines multiple middlewares into a single handler.
// The middlewares are applied in the order they are passed.
func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

// paramsMiddleware logs the request and honours 'verbose=true'.
func paramsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Info("incoming request", "method", r.Method, "url", r.URL.String(), "requestID", middleware.GetReqID(r.Context()))
		if r.URL.Query().Get("verbose") == "true" {
			originalLevel := log.GetLevel()
			log.SetLevel(log.DebugLevel)
			// Background work started by the handler logs at the original level.
			defer log.SetLevel(originalLevel)
		}
		next.ServeHTTP(w, r)
	})
}

// requireAdmin rejects the request unless the current session is an admin.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := s.Manager.Session(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		if !sess.IsAdmin() {
			log.Warn("Rejected non-admin request", "method", r.Method, "path", r.URL.Path)
			writeJSON(w, http.StatusForbidden, errorResponse{Error: "admin login required"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
