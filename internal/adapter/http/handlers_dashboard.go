package adapthttp

import (
	"net/http"
	"net/url"
	"strconv"

	"evidencias/internal/domain"
)

// pageSize is the number of dashboard rows per page.
const pageSize = 10

type dashboardData struct {
	pageData
	Rows         []domain.Expediente
	Busqueda     string
	Error        string
	Creado       string
	Bienvenida   string
	Pagina       int
	TotalPaginas int
	AnteriorURL  string
	SiguienteURL string
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	identity := identityFromContext(r)
	busqueda := r.URL.Query().Get("busqueda")

	data := dashboardData{
		pageData:   pageData{Nombre: identity.Nombre, Activo: "dashboard"},
		Busqueda:   busqueda,
		Creado:     r.URL.Query().Get("creado"),
		Bienvenida: r.URL.Query().Get("bienvenida"),
		Pagina:     1,
	}

	rows, err := s.expedientes.Listar(r.Context(), tokenFromContext(r), busqueda)
	if err != nil {
		// The banner surfaces the failure; the list view itself survives.
		data.Error = "Error al cargar los expedientes."
		s.render(w, http.StatusOK, "dashboard", data)
		return
	}

	paginate(&data, rows, r.URL.Query().Get("pagina"))
	s.render(w, http.StatusOK, "dashboard", data)
}

// paginate slices the full listing into the requested page. The remote API
// returns the whole collection; paging is presentation only.
func paginate(data *dashboardData, rows []domain.Expediente, paginaParam string) {
	total := (len(rows) + pageSize - 1) / pageSize
	if total < 1 {
		total = 1
	}
	pagina, err := strconv.Atoi(paginaParam)
	if err != nil || pagina < 1 {
		pagina = 1
	}
	if pagina > total {
		pagina = total
	}

	inicio := (pagina - 1) * pageSize
	fin := inicio + pageSize
	if fin > len(rows) {
		fin = len(rows)
	}

	data.Rows = rows[inicio:fin]
	data.Pagina = pagina
	data.TotalPaginas = total
	if pagina > 1 {
		data.AnteriorURL = dashboardURL(data.Busqueda, pagina-1)
	}
	if pagina < total {
		data.SiguienteURL = dashboardURL(data.Busqueda, pagina+1)
	}
}

func dashboardURL(busqueda string, pagina int) string {
	q := url.Values{}
	if busqueda != "" {
		q.Set("busqueda", busqueda)
	}
	q.Set("pagina", strconv.Itoa(pagina))
	return "/dashboard?" + q.Encode()
}
