package domain

import (
	"time"

	"github.com/vfg2006/traffic-sync-engine/pkg/utils"
)

// Períodos de agregação suportados pelo motor de sincronização
const (
	Period7d    = "7d"
	Period30d   = "30d"
	PeriodToday = "today"
)

// SupportedPeriods retorna os períodos processados em cada ciclo de agregação
func SupportedPeriods() []string {
	return []string{Period7d, Period30d, PeriodToday}
}

// IsValidPeriod verifica se o período informado é suportado
func IsValidPeriod(period string) bool {
	switch period {
	case Period7d, Period30d, PeriodToday:
		return true
	}
	return false
}

// CampaignMetrics representa as métricas de uma campanha individual
type CampaignMetrics struct {
	CampaignID   string  `json:"campaign_id"`
	CampaignName string  `json:"campaign_name"`
	Spend        float64 `json:"spend"`
	Impressions  int     `json:"impressions"`
	Clicks       int     `json:"clicks"`
	CTR          float64 `json:"ctr"`
	Conversions  int     `json:"conversions"`
	Revenue      float64 `json:"revenue"`
}

// AggregatedMetrics representa as métricas agregadas de um usuário em um
// período, combinando dados de anúncios com vendas registradas internamente
type AggregatedMetrics struct {
	UserID      string             `json:"user_id"`
	TeamName    string             `json:"team_name"`
	Period      string             `json:"period"`
	Impressions int                `json:"impressions"`
	Clicks      int                `json:"clicks"`
	Spend       float64            `json:"spend"`
	SpendKZT    float64            `json:"spend_kzt"`
	Conversions int                `json:"conversions"`
	Revenue     float64            `json:"revenue"`
	Sales       int                `json:"sales"`
	CTR         float64            `json:"ctr"`
	CPC         float64            `json:"cpc"`
	CPM         float64            `json:"cpm"`
	ROAS        float64            `json:"roas"`
	CPA         float64            `json:"cpa"`
	Campaigns   []*CampaignMetrics `json:"campaigns"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// ComputeDerivedMetrics recalcula os índices derivados a partir dos
// contadores brutos. Divisões com denominador zero resultam em 0, nunca
// em erro ou NaN. Os índices nunca são persistidos de forma independente
// dos contadores que os originam
func (m *AggregatedMetrics) ComputeDerivedMetrics() {
	m.CTR = 0
	m.CPC = 0
	m.CPM = 0
	m.ROAS = 0
	m.CPA = 0

	if m.Impressions > 0 {
		m.CTR = utils.RoundWithTwoDecimalPlace(float64(m.Clicks) / float64(m.Impressions) * 100)
		m.CPM = utils.RoundWithTwoDecimalPlace(m.Spend / float64(m.Impressions) * 1000)
	}

	if m.Clicks > 0 {
		m.CPC = utils.RoundWithTwoDecimalPlace(m.Spend / float64(m.Clicks))
	}

	if m.Spend > 0 {
		m.ROAS = utils.RoundWithTwoDecimalPlace(m.Revenue / m.Spend)
	}

	if m.Sales > 0 {
		m.CPA = utils.RoundWithTwoDecimalPlace(m.Spend / float64(m.Sales))
	}
}
