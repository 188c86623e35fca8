package app

import (
	"context"
	"time"

	"evidencias/internal/domain"
)

// ReporteService covers the reporting view.
type ReporteService struct {
	gw domain.Gateway
}

// NewReporteService creates the service backed by the given gateway.
func NewReporteService(gw domain.Gateway) *ReporteService {
	return &ReporteService{gw: gw}
}

// Generar issues one report query with the given filters.
func (s *ReporteService) Generar(ctx context.Context, token string, filtro domain.FiltroReporte) ([]domain.ReporteRow, error) {
	return s.gw.ReporteGeneral(ctx, token, filtro)
}

// RangoPorDefecto returns the default filter window: the trailing 30 days
// ending today.
func RangoPorDefecto(now time.Time) (inicio, fin string) {
	return now.AddDate(0, -1, 0).Format("2006-01-02"), now.Format("2006-01-02")
}
