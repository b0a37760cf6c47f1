package domain

import "time"

// TokenState representa o resultado da última verificação do token de acesso
type TokenState string

const (
	TokenValid   TokenState = "valid"
	TokenInvalid TokenState = "invalid"
	TokenUnknown TokenState = "unknown"
)

// TokenStatus representa a situação do token de acesso da plataforma de
// anúncios, atualizada uma vez por ciclo de sincronização
type TokenStatus struct {
	State     TokenState `json:"state"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// SyncStats acumula os contadores de um ciclo de sincronização
type SyncStats struct {
	UsersProcessed     int   `json:"users_processed"`
	CampaignsProcessed int   `json:"campaigns_processed"`
	MetricsUpdated     int   `json:"metrics_updated"`
	DurationMS         int64 `json:"duration_ms"`
}

// SyncStatus representa o estado atual do agendador de agregação, exposto
// para ferramentas de operação
type SyncStatus struct {
	InProgress     bool       `json:"in_progress"`
	StartedAt      *time.Time `json:"started_at,omitempty"`
	LastSync       *time.Time `json:"last_sync,omitempty"`
	LastError      *string    `json:"last_error,omitempty"`
	NextSync       *time.Time `json:"next_sync,omitempty"`
	TokenStatus    TokenState `json:"token_status"`
	TokenExpiresAt *time.Time `json:"token_expires_at,omitempty"`
	BreakerState   string     `json:"breaker_state"`
	Stats          SyncStats  `json:"stats"`
}

// SyncHistoryEntry representa um registro de auditoria de um ciclo de
// sincronização. Registros nunca são alterados após a criação
type SyncHistoryEntry struct {
	ID             int64     `json:"id"`
	RunID          string    `json:"run_id"`
	StartedAt      time.Time `json:"started_at"`
	CompletedAt    time.Time `json:"completed_at"`
	Success        bool      `json:"success"`
	UsersProcessed int       `json:"users_processed"`
	MetricsUpdated int       `json:"metrics_updated"`
	DurationMS     int64     `json:"duration_ms"`
	ErrorMessage   *string   `json:"error_message,omitempty"`
}
