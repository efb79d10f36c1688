package models

// SocietyStats is the derived per-society case count. It is computed from the cases
// collection on request and never persisted.
type SocietyStats struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
