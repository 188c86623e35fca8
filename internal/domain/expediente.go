// Package domain contains the core entities and the ports to the outside
// world: the remote evidence API and the session store.
package domain

import (
	"context"
	"time"
)

// Expediente is one row of the dashboard listing.
type Expediente struct {
	IdExpediente  int64     `json:"IdExpediente"`
	Codigo        string    `json:"Codigo"`
	FechaRegistro time.Time `json:"FechaRegistro"`
	Tecnico       string    `json:"Tecnico"`
	TotalIndicios int       `json:"TotalIndicios"`
	Estado        string    `json:"Estado"`
	IdEstado      Estado    `json:"IdEstado"`
}

// Cabecera is the header of one expediente in the detail view.
type Cabecera struct {
	IdExpediente         int64     `json:"IdExpediente"`
	Codigo               string    `json:"Codigo"`
	EstadoNombre         string    `json:"EstadoNombre"`
	IdEstado             Estado    `json:"IdEstado"`
	FechaRegistro        time.Time `json:"FechaRegistro"`
	RegistradoPor        string    `json:"RegistradoPor"`
	JustificacionRechazo *string   `json:"JustificacionRechazo,omitempty"`
}

// Indicio is one evidence line item as returned by the remote API.
type Indicio struct {
	IdIndicio   int64  `json:"IdIndicio"`
	Descripcion string `json:"Descripcion"`
	Color       string `json:"Color"`
	Tamano      string `json:"Tamano"`
	Peso        string `json:"Peso"`
	Ubicacion   string `json:"Ubicacion"`
}

// DetalleExpediente is the full detail view payload: header plus line items.
type DetalleExpediente struct {
	Cabecera Cabecera  `json:"cabecera"`
	Indicios []Indicio `json:"indicios"`
}

// NuevoIndicio is a draft line item assembled in the creation flow.
// Descripcion and Ubicacion are required; the rest are optional.
type NuevoIndicio struct {
	Descripcion string `json:"descripcion"`
	Color       string `json:"color"`
	Tamano      string `json:"tamano"`
	Peso        string `json:"peso"`
	Ubicacion   string `json:"ubicacion"`
}

// NuevoExpediente is the single atomic creation payload: one header code and
// every accumulated line item. It is never partially submitted.
type NuevoExpediente struct {
	Codigo   string         `json:"codigo"`
	Indicios []NuevoIndicio `json:"indicios"`
}

// ReporteRow is one row of the aggregate report, derived server-side.
type ReporteRow struct {
	Codigo             string    `json:"Codigo"`
	FechaRegistro      time.Time `json:"FechaRegistro"`
	Estado             string    `json:"Estado"`
	TecnicoResponsable string    `json:"TecnicoResponsable"`
	CantidadIndicios   int       `json:"CantidadIndicios"`
}

// FiltroReporte are the report query filters. IdEstado nil means "all
// states" and is omitted from the request entirely.
type FiltroReporte struct {
	FechaInicio string
	FechaFin    string
	IdEstado    *Estado
}

// Gateway is the port to the remote evidence-control API. Every call is
// fire-once: no retry, no caching. The token, when non-empty, is sent as a
// bearer credential.
type Gateway interface {
	Login(ctx context.Context, correo, password string) (token, nombre string, err error)
	ListExpedientes(ctx context.Context, token, busqueda string) ([]Expediente, error)
	CreateExpediente(ctx context.Context, token string, nuevo NuevoExpediente) error
	GetExpediente(ctx context.Context, token string, id int64) (*DetalleExpediente, error)
	CambiarEstado(ctx context.Context, token string, id int64, hacia Estado, justificacion *string) error
	ReporteGeneral(ctx context.Context, token string, filtro FiltroReporte) ([]ReporteRow, error)
}
