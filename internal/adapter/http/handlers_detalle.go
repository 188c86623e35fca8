package adapthttp

import (
	"net/http"
	"strconv"
	"strings"

	"evidencias/internal/domain"
)

type detalleData struct {
	pageData
	Cabecera     domain.Cabecera
	Indicios     []domain.Indicio
	PuedeRevisar bool
	Error        string
}

type confirmarData struct {
	pageData
	Cabecera domain.Cabecera
}

// handleExpediente routes /expedientes/{id} and the aprobar/rechazar
// sub-paths by hand; the mux only sees the prefix.
func (s *Server) handleExpediente(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/expedientes/")
	parts := strings.SplitN(rest, "/", 2)

	id, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || id <= 0 {
		http.NotFound(w, r)
		return
	}

	accion := ""
	if len(parts) == 2 {
		accion = parts[1]
	}

	switch {
	case accion == "" && r.Method == http.MethodGet:
		s.handleDetalle(w, r, id)
	case accion == "aprobar" && r.Method == http.MethodGet:
		s.handleConfirmarAprobar(w, r, id)
	case accion == "aprobar" && r.Method == http.MethodPost:
		s.handleAprobar(w, r, id)
	case accion == "rechazar" && r.Method == http.MethodPost:
		s.handleRechazar(w, r, id)
	default:
		http.NotFound(w, r)
	}
}

func (s *Server) handleDetalle(w http.ResponseWriter, r *http.Request, id int64) {
	detalle, err := s.expedientes.Detalle(r.Context(), tokenFromContext(r), id)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	s.renderDetalle(w, r, http.StatusOK, detalle, "")
}

func (s *Server) handleConfirmarAprobar(w http.ResponseWriter, r *http.Request, id int64) {
	identity := identityFromContext(r)
	detalle, err := s.expedientes.Detalle(r.Context(), tokenFromContext(r), id)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if !domain.PuedeRevisar(identity.RoleName, detalle.Cabecera.IdEstado) {
		http.Redirect(w, r, "/expedientes/"+strconv.FormatInt(id, 10), http.StatusSeeOther)
		return
	}
	s.render(w, http.StatusOK, "confirmar", confirmarData{
		pageData: pageData{Nombre: identity.Nombre, Activo: "dashboard"},
		Cabecera: detalle.Cabecera,
	})
}

func (s *Server) handleAprobar(w http.ResponseWriter, r *http.Request, id int64) {
	identity := identityFromContext(r)
	token := tokenFromContext(r)

	detalle, err := s.expedientes.Detalle(r.Context(), token, id)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := s.expedientes.Aprobar(r.Context(), token, identity, id, detalle.Cabecera.IdEstado); err != nil {
		s.renderDetalle(w, r, http.StatusOK, detalle, errorMessage(err))
		return
	}
	http.Redirect(w, r, "/expedientes/"+strconv.FormatInt(id, 10), http.StatusSeeOther)
}

func (s *Server) handleRechazar(w http.ResponseWriter, r *http.Request, id int64) {
	identity := identityFromContext(r)
	token := tokenFromContext(r)

	detalle, err := s.expedientes.Detalle(r.Context(), token, id)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	justificacion := r.FormValue("justificacion")
	if err := s.expedientes.Rechazar(r.Context(), token, identity, id, detalle.Cabecera.IdEstado, justificacion); err != nil {
		s.renderDetalle(w, r, http.StatusOK, detalle, errorMessage(err))
		return
	}
	http.Redirect(w, r, "/expedientes/"+strconv.FormatInt(id, 10), http.StatusSeeOther)
}

func (s *Server) renderDetalle(w http.ResponseWriter, r *http.Request, status int, detalle *domain.DetalleExpediente, errMsg string) {
	identity := identityFromContext(r)
	s.render(w, status, "detalle", detalleData{
		pageData:     pageData{Nombre: identity.Nombre, Activo: "dashboard"},
		Cabecera:     detalle.Cabecera,
		Indicios:     detalle.Indicios,
		PuedeRevisar: domain.PuedeRevisar(identity.RoleName, detalle.Cabecera.IdEstado),
		Error:        errMsg,
	})
}
