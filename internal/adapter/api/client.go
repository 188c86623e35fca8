// Package api implements the domain.Gateway port against the remote
// evidence-control HTTP API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"evidencias/internal/domain"
)

// Fallback messages shown when the server response carries no message.
const (
	msgErrorConexion = "Error de conexión"
	msgErrorGenerico = "Ocurrió un error inesperado"
)

// APIError is the uniform error shape for non-2xx responses and failed
// envelopes. Message is the server-provided message when present.
type APIError struct {
	Message string
	Status  int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

// Client is a thin gateway client. It attaches the bearer token to every
// request and normalizes errors; no retry, no caching.
type Client struct {
	base string
	http *http.Client
}

var _ domain.Gateway = (*Client)(nil)

// New creates a Client for the API at base.
func New(base string) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

// envelope is the response wrapper used by every endpoint.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path, token string, query url.Values, body, out any) error {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var payload *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(b)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &APIError{Message: msgErrorConexion, Status: 0}
	}
	defer func() { _ = resp.Body.Close() }()

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := env.Message
		if msg == "" {
			msg = msgErrorGenerico
		}
		return &APIError{Message: msg, Status: resp.StatusCode}
	}
	if decodeErr != nil {
		return fmt.Errorf("decode response: %w", decodeErr)
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = msgErrorGenerico
		}
		return &APIError{Message: msg, Status: resp.StatusCode}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	return nil
}

// Login authenticates against the remote API and returns the issued token
// and the user's display name.
func (c *Client) Login(ctx context.Context, correo, password string) (string, string, error) {
	var data struct {
		Token string `json:"token"`
		User  struct {
			Nombre string `json:"nombre"`
		} `json:"user"`
	}
	body := map[string]string{"correo": correo, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", nil, body, &data); err != nil {
		return "", "", err
	}
	return data.Token, data.User.Nombre, nil
}

// ListExpedientes fetches the dashboard listing, optionally filtered by the
// busqueda search term.
func (c *Client) ListExpedientes(ctx context.Context, token, busqueda string) ([]domain.Expediente, error) {
	var query url.Values
	if busqueda != "" {
		query = url.Values{"busqueda": {busqueda}}
	}
	var rows []domain.Expediente
	if err := c.do(ctx, http.MethodGet, "/expedientes", token, query, nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// CreateExpediente posts one atomic creation request: the header code and
// every line item together.
func (c *Client) CreateExpediente(ctx context.Context, token string, nuevo domain.NuevoExpediente) error {
	return c.do(ctx, http.MethodPost, "/expedientes", token, nil, nuevo, nil)
}

// GetExpediente fetches one expediente with its line items.
func (c *Client) GetExpediente(ctx context.Context, token string, id int64) (*domain.DetalleExpediente, error) {
	var det domain.DetalleExpediente
	path := "/expedientes/" + strconv.FormatInt(id, 10)
	if err := c.do(ctx, http.MethodGet, path, token, nil, nil, &det); err != nil {
		return nil, err
	}
	return &det, nil
}

// CambiarEstado requests a state transition. justificacion is nil for
// approvals and the reviewer's text for rejections.
func (c *Client) CambiarEstado(ctx context.Context, token string, id int64, hacia domain.Estado, justificacion *string) error {
	body := map[string]any{
		"idEstado":      int(hacia),
		"justificacion": justificacion,
	}
	path := "/expedientes/" + strconv.FormatInt(id, 10) + "/estado"
	return c.do(ctx, http.MethodPut, path, token, nil, body, nil)
}

// ReporteGeneral fetches the aggregate report for the filter window. An
// absent state filter is omitted from the query, not sent as a sentinel.
func (c *Client) ReporteGeneral(ctx context.Context, token string, filtro domain.FiltroReporte) ([]domain.ReporteRow, error) {
	query := url.Values{
		"fechaInicio": {filtro.FechaInicio},
		"fechaFin":    {filtro.FechaFin},
	}
	if filtro.IdEstado != nil {
		query.Set("idEstado", strconv.Itoa(int(*filtro.IdEstado)))
	}
	var rows []domain.ReporteRow
	if err := c.do(ctx, http.MethodGet, "/expedientes/reporte-general", token, query, nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
