package metaclient

import (
	"net/http"

	metadomain "github.com/vfg2006/traffic-sync-engine/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/traffic-sync-engine/internal/config"
	"github.com/vfg2006/traffic-sync-engine/internal/domain"
	"github.com/vfg2006/traffic-sync-engine/pkg/resilience"
)

type Client interface {
	GetCampaignInsights(campaignID, datePreset string) (*metadomain.CampaignInsight, error)
	IntrospectToken() (*domain.TokenStatus, error)
}

type MetaClient struct {
	Cfg        *config.Config
	executor   *resilience.Executor
	httpClient *http.Client
}

func NewClient(cfg *config.Config, executor *resilience.Executor) Client {
	return &MetaClient{
		Cfg:      cfg,
		executor: executor,
		httpClient: &http.Client{
			Timeout: cfg.Meta.RequestTimeout(),
		},
	}
}
