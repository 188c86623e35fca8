package app

import (
	"strings"
	"sync"

	"evidencias/internal/domain"
)

// Borrador is the in-progress creation draft for one session: the header
// code and the accumulated line items. It lives only in memory; navigating
// away or submitting discards it.
type Borrador struct {
	Codigo   string
	Indicios []domain.NuevoIndicio
}

// DraftStore keeps per-session creation drafts. Writes are short and
// UI-driven, so a single mutex is enough.
type DraftStore struct {
	mu     sync.Mutex
	drafts map[string]*Borrador
}

// NewDraftStore creates an empty draft store.
func NewDraftStore() *DraftStore {
	return &DraftStore{drafts: make(map[string]*Borrador)}
}

// Get returns a copy of the session's draft, or an empty draft.
func (d *DraftStore) Get(sessionID string) Borrador {
	d.mu.Lock()
	defer d.mu.Unlock()

	b := d.drafts[sessionID]
	if b == nil {
		return Borrador{}
	}
	out := Borrador{Codigo: b.Codigo}
	out.Indicios = make([]domain.NuevoIndicio, len(b.Indicios))
	copy(out.Indicios, b.Indicios)
	return out
}

// SetCodigo records the header code currently typed into the form.
func (d *DraftStore) SetCodigo(sessionID, codigo string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.draft(sessionID).Codigo = strings.TrimSpace(codigo)
}

// AddIndicio validates and appends one line item. Descripción and ubicación
// are required; a validation failure changes nothing.
func (d *DraftStore) AddIndicio(sessionID string, ind domain.NuevoIndicio) error {
	if strings.TrimSpace(ind.Descripcion) == "" || strings.TrimSpace(ind.Ubicacion) == "" {
		return ErrIndicioIncompleto
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	b := d.draft(sessionID)
	b.Indicios = append(b.Indicios, ind)
	return nil
}

// RemoveIndicio drops the line item at index. Out-of-range indexes are
// ignored; there is no undo.
func (d *DraftStore) RemoveIndicio(sessionID string, index int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	b := d.drafts[sessionID]
	if b == nil || index < 0 || index >= len(b.Indicios) {
		return
	}
	b.Indicios = append(b.Indicios[:index], b.Indicios[index+1:]...)
}

// Clear discards the session's draft entirely.
func (d *DraftStore) Clear(sessionID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.drafts, sessionID)
}

// draft returns the mutable draft for a session, creating it if needed.
// Callers must hold d.mu.
func (d *DraftStore) draft(sessionID string) *Borrador {
	b := d.drafts[sessionID]
	if b == nil {
		b = &Borrador{}
		d.drafts[sessionID] = b
	}
	return b
}
