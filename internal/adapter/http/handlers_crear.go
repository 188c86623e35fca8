package adapthttp

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"evidencias/internal/app"
	"evidencias/internal/domain"
)

type crearData struct {
	pageData
	Codigo   string
	Indicios []domain.NuevoIndicio
	Aviso    string
	Error    string
}

func (s *Server) handleCrearExpediente(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.renderCrear(w, r, http.StatusOK, "", "")

	case http.MethodPost:
		s.handleCrearAction(w, r)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleCrearAction dispatches the creation-flow form actions: agregar an
// indicio to the draft, quitar one, or guardar (submit) the whole draft.
func (s *Server) handleCrearAction(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromContext(r)
	s.drafts.SetCodigo(sessionID, r.FormValue("codigo"))

	switch r.FormValue("accion") {
	case "agregar":
		ind := domain.NuevoIndicio{
			Descripcion: r.FormValue("descripcion"),
			Color:       r.FormValue("color"),
			Tamano:      r.FormValue("tamano"),
			Peso:        r.FormValue("peso"),
			Ubicacion:   r.FormValue("ubicacion"),
		}
		if err := s.drafts.AddIndicio(sessionID, ind); err != nil {
			s.renderCrear(w, r, http.StatusOK, "Descripción y Ubicación son obligatorios para el indicio", "")
			return
		}
		s.renderCrear(w, r, http.StatusOK, "", "")

	case "quitar":
		indice, err := strconv.Atoi(r.FormValue("indice"))
		if err == nil {
			s.drafts.RemoveIndicio(sessionID, indice)
		}
		s.renderCrear(w, r, http.StatusOK, "", "")

	case "guardar":
		codigo, err := s.expedientes.Crear(r.Context(), tokenFromContext(r), sessionID)
		switch {
		case errors.Is(err, app.ErrCodigoRequerido):
			s.renderCrear(w, r, http.StatusOK, "El Código del expediente es obligatorio", "")
		case errors.Is(err, app.ErrSinIndicios):
			s.renderCrear(w, r, http.StatusOK, "Debe agregar al menos un indicio", "")
		case err != nil:
			s.renderCrear(w, r, http.StatusOK, "", errorMessage(err))
		default:
			http.Redirect(w, r, "/dashboard?creado="+url.QueryEscape(codigo), http.StatusSeeOther)
		}

	default:
		w.WriteHeader(http.StatusBadRequest)
	}
}

func (s *Server) renderCrear(w http.ResponseWriter, r *http.Request, status int, aviso, errMsg string) {
	identity := identityFromContext(r)
	draft := s.drafts.Get(sessionIDFromContext(r))
	s.render(w, status, "crear", crearData{
		pageData: pageData{Nombre: identity.Nombre, Activo: "crear"},
		Codigo:   draft.Codigo,
		Indicios: draft.Indicios,
		Aviso:    aviso,
		Error:    errMsg,
	})
}
