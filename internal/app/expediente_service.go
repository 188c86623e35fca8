package app

import (
	"context"
	"strings"

	"evidencias/internal/domain"
)

// ExpedienteService covers the listing, creation, and review flows.
type ExpedienteService struct {
	gw     domain.Gateway
	drafts *DraftStore
}

// NewExpedienteService creates the service backed by the given gateway and
// draft store.
func NewExpedienteService(gw domain.Gateway, drafts *DraftStore) *ExpedienteService {
	return &ExpedienteService{gw: gw, drafts: drafts}
}

// Listar fetches the dashboard rows, optionally filtered by busqueda.
func (s *ExpedienteService) Listar(ctx context.Context, token, busqueda string) ([]domain.Expediente, error) {
	return s.gw.ListExpedientes(ctx, token, busqueda)
}

// Detalle fetches one expediente with its line items.
func (s *ExpedienteService) Detalle(ctx context.Context, token string, id int64) (*domain.DetalleExpediente, error) {
	return s.gw.GetExpediente(ctx, token, id)
}

// Crear validates the session's draft and submits it as one atomic creation
// request. Validation failures abort before any network call. On success the
// draft is discarded.
func (s *ExpedienteService) Crear(ctx context.Context, token, sessionID string) (string, error) {
	draft := s.drafts.Get(sessionID)
	if strings.TrimSpace(draft.Codigo) == "" {
		return "", ErrCodigoRequerido
	}
	if len(draft.Indicios) == 0 {
		return "", ErrSinIndicios
	}

	nuevo := domain.NuevoExpediente{Codigo: draft.Codigo, Indicios: draft.Indicios}
	if err := s.gw.CreateExpediente(ctx, token, nuevo); err != nil {
		return "", err
	}
	s.drafts.Clear(sessionID)
	return draft.Codigo, nil
}

// Aprobar transitions the expediente to Aprobado. The caller's role and the
// current state gate the call on this side for display parity, but the
// remote API remains the authority; its rejection is surfaced as-is.
func (s *ExpedienteService) Aprobar(ctx context.Context, token string, viewer *domain.Identity, id int64, desde domain.Estado) error {
	if !viewer.EsCoordinador() {
		return ErrNoAutorizado
	}
	if !domain.PuedeTransicionar(desde, domain.EstadoAprobado) {
		return ErrTransicionInvalida
	}
	return s.gw.CambiarEstado(ctx, token, id, domain.EstadoAprobado, nil)
}

// Rechazar transitions the expediente to Rechazado with a mandatory
// justification, echoed back by the server for later display.
func (s *ExpedienteService) Rechazar(ctx context.Context, token string, viewer *domain.Identity, id int64, desde domain.Estado, justificacion string) error {
	if !viewer.EsCoordinador() {
		return ErrNoAutorizado
	}
	if !domain.PuedeTransicionar(desde, domain.EstadoRechazado) {
		return ErrTransicionInvalida
	}
	justificacion = strings.TrimSpace(justificacion)
	if justificacion == "" {
		return ErrJustificacionRequerida
	}
	return s.gw.CambiarEstado(ctx, token, id, domain.EstadoRechazado, &justificacion)
}
