package metadomain

import (
	"strconv"

	"github.com/sirupsen/logrus"
)

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
}

type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// CampaignInsight representa uma linha de insights de campanha
// retornada pela API do Meta. Os valores numéricos chegam como strings.
type CampaignInsight struct {
	CampaignID   string   `json:"campaign_id"`
	CampaignName string   `json:"campaign_name"`
	Spend        string   `json:"spend"`
	Impressions  string   `json:"impressions"`
	Clicks       string   `json:"clicks"`
	CTR          string   `json:"ctr"`
	Actions      []Action `json:"actions"`
	ActionValues []Action `json:"action_values"`
	DateStart    string   `json:"date_start"`
	DateStop     string   `json:"date_stop"`
}

// GetConversions retorna a quantidade de compras registradas na campanha
func (c *CampaignInsight) GetConversions() int {
	for i := range c.Actions {
		action := c.Actions[i]

		if action.ActionType == ActionTypePurchase {
			value, err := strconv.Atoi(action.Value)
			if err != nil {
				logrus.WithError(err).Error("Erro ao converter valor da ação")
				return 0
			}

			return value
		}
	}

	return 0
}

// GetConversionValue retorna a receita de compras registrada na campanha
func (c *CampaignInsight) GetConversionValue() float64 {
	for i := range c.ActionValues {
		action := c.ActionValues[i]

		if action.ActionType == ActionTypePurchase {
			value, err := strconv.ParseFloat(action.Value, 64)
			if err != nil {
				logrus.WithError(err).Error("Erro ao converter valor da conversão")
				return 0
			}

			return value
		}
	}

	return 0
}

// ParseFloatField converte um campo numérico textual da API em float64.
// Campos ausentes ou malformados viram zero.
func ParseFloatField(value string) float64 {
	if value == "" {
		return 0
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		logrus.WithField("value", value).Warn("Campo numérico inválido na resposta da API")
		return 0
	}

	return parsed
}

// ParseIntField converte um campo inteiro textual da API em int64
func ParseIntField(value string) int64 {
	if value == "" {
		return 0
	}

	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		logrus.WithField("value", value).Warn("Campo inteiro inválido na resposta da API")
		return 0
	}

	return parsed
}

// ActionTypePurchase é o tipo de ação usado para contabilizar conversões
const ActionTypePurchase = "purchase"

// DebugTokenResponse representa a resposta do endpoint debug_token
type DebugTokenResponse struct {
	Data DebugTokenData `json:"data"`
}

type DebugTokenData struct {
	AppID     string        `json:"app_id"`
	IsValid   bool          `json:"is_valid"`
	ExpiresAt int64         `json:"expires_at"`
	Scopes    []string      `json:"scopes"`
	Error     *ErrorDetails `json:"error,omitempty"`
}
