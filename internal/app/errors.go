// Package app holds the application services: session management, the
// expediente flows, and reporting.
package app

import "errors"

var (
	// ErrCodigoRequerido indicates a creation submit without a header code.
	ErrCodigoRequerido = errors.New("el código del expediente es obligatorio")
	// ErrSinIndicios indicates a creation submit with an empty draft list.
	ErrSinIndicios = errors.New("debe agregar al menos un indicio")
	// ErrIndicioIncompleto indicates a draft item missing descripción or ubicación.
	ErrIndicioIncompleto = errors.New("descripción y ubicación son obligatorios para el indicio")
	// ErrJustificacionRequerida indicates a rejection without justification text.
	ErrJustificacionRequerida = errors.New("la justificación del rechazo es obligatoria")
	// ErrTransicionInvalida indicates a transition from a terminal or unknown state.
	ErrTransicionInvalida = errors.New("el expediente no admite esta transición de estado")
	// ErrNoAutorizado indicates the viewer lacks the reviewer role.
	ErrNoAutorizado = errors.New("no autorizado para revisar expedientes")
	// ErrSesionNoEncontrada indicates the session does not exist.
	ErrSesionNoEncontrada = errors.New("sesión no encontrada")
	// ErrSesionExpirada indicates the session has expired.
	ErrSesionExpirada = errors.New("sesión expirada")
)
