package domain

import "time"

// Targetologist representa um usuário/time cujas campanhas rastreadas são
// agregadas pelo motor de sincronização
type Targetologist struct {
	ID               string    `json:"id"`
	TeamName         string    `json:"team_name"`
	UTMSource        string    `json:"utm_source"`
	TrackedCampaigns []string  `json:"tracked_campaigns"`
	Active           bool      `json:"active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
