// Package aggregating calcula as métricas agregadas de cada targetologist
// combinando insights de campanhas com as vendas atribuídas por UTM
package aggregating

import (
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/traffic-sync-engine/infrastructure/integrator/meta"
	metadomain "github.com/vfg2006/traffic-sync-engine/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/traffic-sync-engine/infrastructure/repository"
	"github.com/vfg2006/traffic-sync-engine/internal/config"
	"github.com/vfg2006/traffic-sync-engine/internal/domain"
	"github.com/vfg2006/traffic-sync-engine/pkg/resilience"
	"github.com/vfg2006/traffic-sync-engine/pkg/utils"
)

type Aggregator interface {
	AggregateUserMetrics(targetologist *domain.Targetologist, period string, rate float64) (*domain.AggregatedMetrics, int, error)
}

type Service struct {
	cfg            *config.Config
	metaService    meta.Integrator
	saleRepository repository.SaleRepository
	limiter        *resilience.Limiter
	sleep          func(time.Duration)
}

func NewService(
	cfg *config.Config,
	metaService meta.Integrator,
	saleRepo repository.SaleRepository,
) *Service {
	return &Service{
		cfg:            cfg,
		metaService:    metaService,
		saleRepository: saleRepo,
		limiter:        resilience.NewLimiter(cfg.MetricsSync.MaxConcurrentRequests),
		sleep:          time.Sleep,
	}
}

// AggregateUserMetrics calcula as métricas de um targetologist em um
// período. As campanhas rastreadas são consultadas em lotes concorrentes;
// falhas individuais são registradas e ignoradas, mas token expirado
// interrompe a agregação imediatamente. Retorna também a quantidade de
// campanhas processadas com sucesso
func (s *Service) AggregateUserMetrics(targetologist *domain.Targetologist, period string, rate float64) (*domain.AggregatedMetrics, int, error) {
	metrics := &domain.AggregatedMetrics{
		UserID:    targetologist.ID,
		TeamName:  targetologist.TeamName,
		Period:    period,
		Campaigns: make([]*domain.CampaignMetrics, 0, len(targetologist.TrackedCampaigns)),
		UpdatedAt: time.Now(),
	}

	campaigns, processed, err := s.fetchCampaignMetrics(targetologist, period)
	if err != nil {
		return nil, processed, err
	}

	for _, campaign := range campaigns {
		metrics.Impressions += campaign.Impressions
		metrics.Clicks += campaign.Clicks
		metrics.Spend += campaign.Spend
		metrics.Conversions += campaign.Conversions
		metrics.Revenue += campaign.Revenue
		metrics.Campaigns = append(metrics.Campaigns, campaign)
	}

	startDate, endDate := periodDateRange(period)

	summary, err := s.saleRepository.GetSalesSummary(targetologist.UTMSource, startDate, endDate)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id":    targetologist.ID,
			"utm_source": targetologist.UTMSource,
			"period":     period,
			"error":      err.Error(),
		}).Error("Erro ao buscar resumo de vendas, seguindo sem vendas internas")
	} else if summary != nil {
		metrics.Sales = summary.Count
		metrics.Revenue += summary.Revenue
	}

	metrics.Spend = utils.RoundWithTwoDecimalPlace(metrics.Spend)
	metrics.Revenue = utils.RoundWithTwoDecimalPlace(metrics.Revenue)
	metrics.SpendKZT = utils.RoundWithTwoDecimalPlace(metrics.Spend * rate)
	metrics.ComputeDerivedMetrics()

	return metrics, processed, nil
}

// fetchCampaignMetrics consulta as campanhas rastreadas em lotes
// limitados pela concorrência configurada, com uma pausa entre lotes para
// não saturar a API. A ordem das campanhas do targetologist é preservada
func (s *Service) fetchCampaignMetrics(targetologist *domain.Targetologist, period string) ([]*domain.CampaignMetrics, int, error) {
	total := len(targetologist.TrackedCampaigns)
	if total == 0 {
		return nil, 0, nil
	}

	results := make([]*domain.CampaignMetrics, total)

	var mu sync.Mutex
	var tokenErr error

	batchSize := s.cfg.MetricsSync.MaxConcurrentRequests
	if batchSize < 1 {
		batchSize = 1
	}

	for start := 0; start < total; start += batchSize {
		end := start + batchSize
		if end > total {
			end = total
		}

		mu.Lock()
		aborted := tokenErr != nil
		mu.Unlock()
		if aborted {
			break
		}

		var wg sync.WaitGroup

		for i := start; i < end; i++ {
			wg.Add(1)

			go func(index int, campaignID string) {
				defer wg.Done()

				err := s.limiter.Do(func() error {
					campaign, err := s.metaService.GetCampaignMetrics(campaignID, period)
					if err != nil {
						return err
					}

					mu.Lock()
					results[index] = campaign
					mu.Unlock()

					return nil
				})
				if err != nil {
					var apiErr *metadomain.APIError
					if errors.As(err, &apiErr) && apiErr.IsTokenExpired() {
						mu.Lock()
						tokenErr = meta.ErrTokenInvalid
						mu.Unlock()
						return
					}

					logrus.WithFields(logrus.Fields{
						"user_id":     targetologist.ID,
						"campaign_id": campaignID,
						"period":      period,
						"error":       err.Error(),
					}).Warn("Falha ao buscar métricas da campanha, campanha ignorada neste ciclo")
				}
			}(i, targetologist.TrackedCampaigns[i])
		}

		wg.Wait()

		if end < total && s.cfg.MetricsSync.BatchDelayMS > 0 {
			s.sleep(time.Duration(s.cfg.MetricsSync.BatchDelayMS) * time.Millisecond)
		}
	}

	if tokenErr != nil {
		return nil, 0, tokenErr
	}

	campaigns := make([]*domain.CampaignMetrics, 0, total)
	for _, campaign := range results {
		if campaign != nil {
			campaigns = append(campaigns, campaign)
		}
	}

	return campaigns, len(campaigns), nil
}

// periodDateRange converte um período de agregação no intervalo de datas
// usado para filtrar as vendas internas
func periodDateRange(period string) (time.Time, time.Time) {
	now := time.Now()

	switch period {
	case domain.PeriodToday:
		startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return startOfDay, now
	case domain.Period7d:
		return now.AddDate(0, 0, -7), now
	default:
		return now.AddDate(0, 0, -30), now
	}
}
