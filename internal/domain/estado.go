package domain

// Estado is the lifecycle state of an expediente. The numeric codes are
// assigned by the remote API and must match it exactly.
type Estado int

// Lifecycle states of an expediente.
const (
	EstadoRegistrado Estado = 1
	EstadoEnRevision Estado = 2
	EstadoAprobado   Estado = 3
	EstadoRechazado  Estado = 4
)

// RolCoordinador is the role authorized to approve or reject expedientes.
const RolCoordinador = "Coordinador"

// String returns the display label used across the UI.
func (e Estado) String() string {
	switch e {
	case EstadoRegistrado:
		return "Registrado"
	case EstadoEnRevision:
		return "En Revisión"
	case EstadoAprobado:
		return "Aprobado"
	case EstadoRechazado:
		return "Rechazado"
	}
	return "Desconocido"
}

// ChipColor maps a state code to the status-chip color used by the views.
func (e Estado) ChipColor() string {
	switch e {
	case EstadoRegistrado:
		return "info"
	case EstadoEnRevision:
		return "warning"
	case EstadoAprobado:
		return "success"
	case EstadoRechazado:
		return "error"
	}
	return "default"
}

// Terminal reports whether the state admits no further transitions.
func (e Estado) Terminal() bool {
	return e == EstadoAprobado || e == EstadoRechazado
}

// Valido reports whether e is one of the four known state codes.
func (e Estado) Valido() bool {
	return e >= EstadoRegistrado && e <= EstadoRechazado
}

// PuedeTransicionar reports whether the review flow allows moving an
// expediente from desde to hacia. Only Registrado and En Revisión admit
// transitions, and only into the two terminal states.
func PuedeTransicionar(desde, hacia Estado) bool {
	if desde != EstadoRegistrado && desde != EstadoEnRevision {
		return false
	}
	return hacia == EstadoAprobado || hacia == EstadoRechazado
}

// PuedeRevisar reports whether a viewer with the given role may see the
// approve/reject controls for an expediente in state e. This is a display
// gate only; the remote API remains the authority on the transition.
func PuedeRevisar(roleName string, e Estado) bool {
	return roleName == RolCoordinador && (e == EstadoRegistrado || e == EstadoEnRevision)
}
