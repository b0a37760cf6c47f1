package meta

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	metadomain "github.com/vfg2006/traffic-sync-engine/infrastructure/integrator/meta/domain"
	clientmocks "github.com/vfg2006/traffic-sync-engine/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/vfg2006/traffic-sync-engine/internal/config"
	"github.com/vfg2006/traffic-sync-engine/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestIntegrator(t *testing.T) (*MetaIntegrator, *clientmocks.MockClient) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockClient := clientmocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.MetricsSync.TokenExpiryWarningDays = 7

	return New(cfg, mockClient), mockClient
}

func TestMetaIntegrator_GetCampaignMetrics(t *testing.T) {
	t.Run("Campos textuais da API são convertidos em métricas numéricas", func(t *testing.T) {
		integrator, mockClient := newTestIntegrator(t)

		mockClient.EXPECT().
			GetCampaignInsights("camp-1", "last_7d").
			Return(&metadomain.CampaignInsight{
				CampaignID:   "camp-1",
				CampaignName: "Campanha Alpha",
				Spend:        "123.45",
				Impressions:  "10000",
				Clicks:       "200",
				CTR:          "2.004",
				Actions:      []metadomain.Action{{ActionType: "purchase", Value: "7"}},
				ActionValues: []metadomain.Action{{ActionType: "purchase", Value: "350.50"}},
			}, nil)

		metrics, err := integrator.GetCampaignMetrics("camp-1", domain.Period7d)

		assert.NoError(t, err)
		assert.Equal(t, "camp-1", metrics.CampaignID)
		assert.Equal(t, "Campanha Alpha", metrics.CampaignName)
		assert.Equal(t, 123.45, metrics.Spend)
		assert.Equal(t, 10000, metrics.Impressions)
		assert.Equal(t, 200, metrics.Clicks)
		assert.Equal(t, 2.0, metrics.CTR)
		assert.Equal(t, 7, metrics.Conversions)
		assert.Equal(t, 350.50, metrics.Revenue)
	})

	t.Run("Campanha sem dados retorna métricas zeradas", func(t *testing.T) {
		integrator, mockClient := newTestIntegrator(t)

		mockClient.EXPECT().
			GetCampaignInsights("camp-2", "today").
			Return(nil, nil)

		metrics, err := integrator.GetCampaignMetrics("camp-2", domain.PeriodToday)

		assert.NoError(t, err)
		assert.Equal(t, "camp-2", metrics.CampaignID)
		assert.Equal(t, 0.0, metrics.Spend)
		assert.Equal(t, 0, metrics.Impressions)
	})

	t.Run("Período não suportado retorna erro sem chamar a API", func(t *testing.T) {
		integrator, _ := newTestIntegrator(t)

		metrics, err := integrator.GetCampaignMetrics("camp-1", "90d")

		assert.Error(t, err)
		assert.Nil(t, metrics)
	})

	t.Run("Campos malformados viram zero sem derrubar a conversão", func(t *testing.T) {
		integrator, mockClient := newTestIntegrator(t)

		mockClient.EXPECT().
			GetCampaignInsights("camp-3", "last_30d").
			Return(&metadomain.CampaignInsight{
				CampaignID:  "camp-3",
				Spend:       "not-a-number",
				Impressions: "",
			}, nil)

		metrics, err := integrator.GetCampaignMetrics("camp-3", domain.Period30d)

		assert.NoError(t, err)
		assert.Equal(t, 0.0, metrics.Spend)
		assert.Equal(t, 0, metrics.Impressions)
	})
}

func TestMetaIntegrator_CheckTokenHealth(t *testing.T) {
	t.Run("Token válido longe de expirar passa sem erro", func(t *testing.T) {
		integrator, mockClient := newTestIntegrator(t)

		expiresAt := time.Now().Add(60 * 24 * time.Hour)
		mockClient.EXPECT().
			IntrospectToken().
			Return(&domain.TokenStatus{State: domain.TokenValid, ExpiresAt: &expiresAt}, nil)

		status, err := integrator.CheckTokenHealth()

		assert.NoError(t, err)
		assert.Equal(t, domain.TokenValid, status.State)
	})

	t.Run("Token inválido retorna ErrTokenInvalid", func(t *testing.T) {
		integrator, mockClient := newTestIntegrator(t)

		mockClient.EXPECT().
			IntrospectToken().
			Return(&domain.TokenStatus{State: domain.TokenInvalid}, nil)

		status, err := integrator.CheckTokenHealth()

		assert.ErrorIs(t, err, ErrTokenInvalid)
		assert.Equal(t, domain.TokenInvalid, status.State)
	})

	t.Run("Estado desconhecido não bloqueia a sincronização", func(t *testing.T) {
		integrator, mockClient := newTestIntegrator(t)

		mockClient.EXPECT().
			IntrospectToken().
			Return(&domain.TokenStatus{State: domain.TokenUnknown}, nil)

		status, err := integrator.CheckTokenHealth()

		assert.NoError(t, err)
		assert.Equal(t, domain.TokenUnknown, status.State)
	})

	t.Run("Token expirando dentro da janela de aviso ainda é válido", func(t *testing.T) {
		integrator, mockClient := newTestIntegrator(t)

		expiresAt := time.Now().Add(3 * 24 * time.Hour)
		mockClient.EXPECT().
			IntrospectToken().
			Return(&domain.TokenStatus{State: domain.TokenValid, ExpiresAt: &expiresAt}, nil)

		status, err := integrator.CheckTokenHealth()

		assert.NoError(t, err)
		assert.Equal(t, domain.TokenValid, status.State)
	})
}
