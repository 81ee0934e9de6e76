package domain

// HealthStatus is the normalized liveness of one downstream. There is no
// history; every probe computes it fresh.
type HealthStatus string

const (
	StatusUp   HealthStatus = "UP"
	StatusDown HealthStatus = "DOWN"
)

// SystemHealth aggregates the probe results for every downstream.
type SystemHealth struct {
	Status         HealthStatus `json:"status"`
	Product        HealthStatus `json:"product"`
	Recommendation HealthStatus `json:"recommendation"`
	Review         HealthStatus `json:"review"`
}

// Aggregate reduces the per-service statuses: the composite is UP only when
// every downstream is.
func (h SystemHealth) Aggregate() HealthStatus {
	if h.Product == StatusUp && h.Recommendation == StatusUp && h.Review == StatusUp {
		return StatusUp
	}
	return StatusDown
}
