// Package adapthttp implements the HTTP adapter: the route guard, the page
// handlers, and the rendered views.
package adapthttp

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"evidencias/internal/app"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	auth        *app.AuthService
	expedientes *app.ExpedienteService
	reportes    *app.ReporteService
	drafts      *app.DraftStore
	oidc        *OIDCConfig
	tmpl        *template.Template
}

// New creates a Server wired to the given application services. oidc may be
// a disabled config when SSO is not set up.
func New(auth *app.AuthService, exp *app.ExpedienteService, rep *app.ReporteService, drafts *app.DraftStore, oidc *OIDCConfig) *Server {
	if oidc == nil {
		oidc = &OIDCConfig{}
	}
	funcs := template.FuncMap{
		"fechaLocal": func(t time.Time) string {
			return t.Local().Format("02/01/2006 15:04")
		},
	}
	tmpl := template.Must(template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html"))
	return &Server{auth: auth, expedientes: exp, reportes: rep, drafts: drafts, oidc: oidc, tmpl: tmpl}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	mux.HandleFunc("/login", s.handleLogin)
	mux.HandleFunc("/logout", s.handleLogout)
	mux.HandleFunc("/auth/sso/login", s.handleSSOLogin)
	mux.HandleFunc("/auth/sso/callback", s.handleSSOCallback)

	protected := http.NewServeMux()
	protected.HandleFunc("/dashboard", s.handleDashboard)
	protected.HandleFunc("/crear-expediente", s.handleCrearExpediente)
	protected.HandleFunc("/expedientes/", s.handleExpediente)
	protected.HandleFunc("/reportes", s.handleReportes)
	// Anything else lands on the dashboard.
	protected.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	})
	mux.Handle("/", s.requireAuth(protected))

	return s.loggingMiddleware(withNoCache(mux))
}
