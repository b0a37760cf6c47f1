package meta

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/traffic-sync-engine/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/traffic-sync-engine/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/traffic-sync-engine/internal/config"
	"github.com/vfg2006/traffic-sync-engine/internal/domain"
	"github.com/vfg2006/traffic-sync-engine/pkg/utils"
)

// ErrTokenInvalid indica que o token de acesso foi rejeitado pela
// plataforma de anúncios e a sincronização não pode prosseguir
var ErrTokenInvalid = fmt.Errorf("token de acesso inválido ou expirado")

type Integrator interface {
	GetCampaignMetrics(campaignID, period string) (*domain.CampaignMetrics, error)
	CheckTokenHealth() (*domain.TokenStatus, error)
}

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// periodToDatePreset mapeia os períodos de agregação para os presets de
// data aceitos pela API do Meta
var periodToDatePreset = map[string]string{
	domain.PeriodToday: "today",
	domain.Period7d:    "last_7d",
	domain.Period30d:   "last_30d",
}

// GetCampaignMetrics busca os insights de uma campanha no período
// informado e converte os campos textuais da API em métricas numéricas.
// Campanhas sem dados no período retornam métricas zeradas
func (s *MetaIntegrator) GetCampaignMetrics(campaignID, period string) (*domain.CampaignMetrics, error) {
	datePreset, ok := periodToDatePreset[period]
	if !ok {
		return nil, fmt.Errorf("período não suportado: %s", period)
	}

	insight, err := s.Client.GetCampaignInsights(campaignID, datePreset)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"period":      period,
			"error":       err.Error(),
		}).Error("insights: falha ao buscar métricas da campanha na API")
		return nil, err
	}

	if insight == nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"period":      period,
		}).Debug("insights: campanha sem dados no período")

		return &domain.CampaignMetrics{CampaignID: campaignID}, nil
	}

	metrics := &domain.CampaignMetrics{
		CampaignID:   insight.CampaignID,
		CampaignName: insight.CampaignName,
		Spend:        metadomain.ParseFloatField(insight.Spend),
		Impressions:  int(metadomain.ParseIntField(insight.Impressions)),
		Clicks:       int(metadomain.ParseIntField(insight.Clicks)),
		CTR:          utils.RoundWithTwoDecimalPlace(metadomain.ParseFloatField(insight.CTR)),
		Conversions:  insight.GetConversions(),
		Revenue:      insight.GetConversionValue(),
	}

	if metrics.CampaignID == "" {
		metrics.CampaignID = campaignID
	}

	return metrics, nil
}

// CheckTokenHealth verifica o estado do token de acesso antes de um ciclo
// de sincronização. Token inválido retorna erro e aborta o ciclo; token
// válido perto de expirar gera apenas um aviso; estado desconhecido não
// bloqueia a sincronização
func (s *MetaIntegrator) CheckTokenHealth() (*domain.TokenStatus, error) {
	status, err := s.Client.IntrospectToken()
	if err != nil {
		logrus.WithError(err).Warn("Verificação do token falhou, seguindo com estado desconhecido")
		return &domain.TokenStatus{State: domain.TokenUnknown}, nil
	}

	switch status.State {
	case domain.TokenInvalid:
		logrus.Error("Token de acesso inválido, ciclo de sincronização será abortado")
		return status, ErrTokenInvalid
	case domain.TokenUnknown:
		logrus.Warn("Estado do token desconhecido, sincronização seguirá normalmente")
		return status, nil
	}

	if status.ExpiresAt != nil {
		warningWindow := time.Duration(s.cfg.MetricsSync.TokenExpiryWarningDays) * 24 * time.Hour
		remaining := time.Until(*status.ExpiresAt)

		if remaining <= warningWindow {
			logrus.WithFields(logrus.Fields{
				"expires_at":     status.ExpiresAt.Format(time.RFC3339),
				"days_remaining": int(remaining.Hours() / 24),
			}).Warn("Token de acesso expira em breve, renove-o para evitar interrupções")
		}
	}

	return status, nil
}
