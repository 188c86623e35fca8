package adapthttp

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"evidencias/internal/adapter/api"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// render executes one page template. Every page data struct embeds pageData.
func (s *Server) render(w http.ResponseWriter, status int, page string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.tmpl.ExecuteTemplate(w, page+".html", data); err != nil {
		log.Printf("render %s: %v", page, err)
	}
}

// pageData carries the fields every rendered page needs.
type pageData struct {
	Nombre string
	Activo string
}

// errorMessage extracts the user-facing message for a failed gateway call:
// the server's message verbatim when present, otherwise the error text.
func errorMessage(err error) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

func withNoCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}
