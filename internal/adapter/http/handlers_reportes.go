package adapthttp

import (
	"net/http"
	"strconv"
	"time"

	"evidencias/internal/app"
	"evidencias/internal/domain"
)

type barra struct {
	Name       string
	Cantidad   int
	Porcentaje int
}

type reportesData struct {
	pageData
	FechaInicio string
	FechaFin    string
	IdEstado    string
	Consultado  bool
	Rows        []domain.ReporteRow
	Barras      []barra
	Estados     []domain.Estado
	Error       string
}

func (s *Server) handleReportes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	identity := identityFromContext(r)

	inicio, fin := app.RangoPorDefecto(time.Now())
	data := reportesData{
		pageData:    pageData{Nombre: identity.Nombre, Activo: "reportes"},
		FechaInicio: inicio,
		FechaFin:    fin,
		Estados: []domain.Estado{
			domain.EstadoRegistrado,
			domain.EstadoEnRevision,
			domain.EstadoAprobado,
			domain.EstadoRechazado,
		},
	}

	q := r.URL.Query()
	if q.Get("fechaInicio") == "" {
		s.render(w, http.StatusOK, "reportes", data)
		return
	}

	data.Consultado = true
	data.FechaInicio = q.Get("fechaInicio")
	data.FechaFin = q.Get("fechaFin")
	data.IdEstado = q.Get("idEstado")

	filtro := domain.FiltroReporte{
		FechaInicio: data.FechaInicio,
		FechaFin:    data.FechaFin,
	}
	if data.IdEstado != "" {
		if n, err := strconv.Atoi(data.IdEstado); err == nil {
			e := domain.Estado(n)
			filtro.IdEstado = &e
		}
	}

	rows, err := s.reportes.Generar(r.Context(), tokenFromContext(r), filtro)
	if err != nil {
		data.Error = errorMessage(err)
		s.render(w, http.StatusOK, "reportes", data)
		return
	}

	data.Rows = rows
	data.Barras = barras(domain.Agrupar(rows))
	s.render(w, http.StatusOK, "reportes", data)
}

// barras scales the aggregated counts to percentages of the largest bucket
// so the template can draw proportional bars.
func barras(items []domain.GraficaItem) []barra {
	max := 0
	for _, it := range items {
		if it.Cantidad > max {
			max = it.Cantidad
		}
	}
	out := make([]barra, 0, len(items))
	for _, it := range items {
		pct := 0
		if max > 0 {
			pct = it.Cantidad * 100 / max
		}
		out = append(out, barra{Name: it.Name, Cantidad: it.Cantidad, Porcentaje: pct})
	}
	return out
}
