package types

// Status is the lifecycle value stored in the "estado" column of a record.
// Values are persisted with their Spanish spelling.
type Status string

const (
	// Clients and suppliers
	StatusActive   Status = "Activo"
	StatusInactive Status = "Inactivo"

	// Vehicles
	StatusAvailable   Status = "Disponible"
	StatusReserved    Status = "Reservado"
	StatusSold        Status = "Vendido"
	StatusUnavailable Status = "No disponible"

	// StatusAll is the filter value meaning "any status"
	StatusAll Status = "Todos"
)

var (
	PartyStatuses   = []Status{StatusActive, StatusInactive}
	VehicleStatuses = []Status{StatusAvailable, StatusReserved, StatusSold, StatusUnavailable}
)

func (s Status) String() string {
	return string(s)
}

// StatusStrings converts a status list into its persisted spelling
func StatusStrings(statuses []Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
