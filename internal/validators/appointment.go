package validators

import "github.com/google/uuid"

// ======================================================
// VALIDACIONES DE CITA
// ======================================================

// IsValidClientID valida la forma del identificador que asigna el store
// (UUID). Sólo forma, no existencia.
func IsValidClientID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// IsValidAppointmentDNI sólo exige longitud 8; a diferencia del cliente
// no se revisa que sean dígitos. Asimetría heredada del sistema original.
func IsValidAppointmentDNI(dni string) bool {
	return len(dni) == 8
}
