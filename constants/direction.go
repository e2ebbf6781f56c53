package constants

// Direction is the canonical crossing direction for a stamp.
type Direction string

// Stable values (store these exact strings in DB).
const (
	DirectionArrival   Direction = "ARRIVAL"
	DirectionDeparture Direction = "DEPARTURE"
)
