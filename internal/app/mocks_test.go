package app

import (
	"context"
	"errors"

	"evidencias/internal/domain"
)

// Function-field mocks for the gateway and session repository ports.

type mockGateway struct {
	loginFn         func(ctx context.Context, correo, password string) (string, string, error)
	listFn          func(ctx context.Context, token, busqueda string) ([]domain.Expediente, error)
	createFn        func(ctx context.Context, token string, nuevo domain.NuevoExpediente) error
	getFn           func(ctx context.Context, token string, id int64) (*domain.DetalleExpediente, error)
	cambiarEstadoFn func(ctx context.Context, token string, id int64, hacia domain.Estado, justificacion *string) error
	reporteFn       func(ctx context.Context, token string, filtro domain.FiltroReporte) ([]domain.ReporteRow, error)

	createCalls  int
	cambiarCalls int
}

func (m *mockGateway) Login(ctx context.Context, correo, password string) (string, string, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, correo, password)
	}
	return "", "", errors.New("login not stubbed")
}

func (m *mockGateway) ListExpedientes(ctx context.Context, token, busqueda string) ([]domain.Expediente, error) {
	if m.listFn != nil {
		return m.listFn(ctx, token, busqueda)
	}
	return nil, nil
}

func (m *mockGateway) CreateExpediente(ctx context.Context, token string, nuevo domain.NuevoExpediente) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, token, nuevo)
	}
	return nil
}

func (m *mockGateway) GetExpediente(ctx context.Context, token string, id int64) (*domain.DetalleExpediente, error) {
	if m.getFn != nil {
		return m.getFn(ctx, token, id)
	}
	return nil, errors.New("get not stubbed")
}

func (m *mockGateway) CambiarEstado(ctx context.Context, token string, id int64, hacia domain.Estado, justificacion *string) error {
	m.cambiarCalls++
	if m.cambiarEstadoFn != nil {
		return m.cambiarEstadoFn(ctx, token, id, hacia, justificacion)
	}
	return nil
}

func (m *mockGateway) ReporteGeneral(ctx context.Context, token string, filtro domain.FiltroReporte) ([]domain.ReporteRow, error) {
	if m.reporteFn != nil {
		return m.reporteFn(ctx, token, filtro)
	}
	return nil, nil
}

type mockSessionRepo struct {
	createFn        func(ctx context.Context, s *domain.Session) error
	getByIDFn       func(ctx context.Context, id string) (*domain.Session, error)
	deleteFn        func(ctx context.Context, id string) error
	deleteExpiredFn func(ctx context.Context) error

	deleted []string
}

func (m *mockSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	if m.createFn != nil {
		return m.createFn(ctx, s)
	}
	return nil
}

func (m *mockSessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockSessionRepo) Delete(ctx context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockSessionRepo) DeleteExpired(ctx context.Context) error {
	if m.deleteExpiredFn != nil {
		return m.deleteExpiredFn(ctx)
	}
	return nil
}
