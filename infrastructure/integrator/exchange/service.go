package exchange

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/traffic-sync-engine/internal/config"
	"github.com/vfg2006/traffic-sync-engine/pkg/utils"
)

// RateProvider fornece a taxa de câmbio usada para converter o gasto em
// anúncios para a moeda local
type RateProvider interface {
	GetRate() float64
}

type rateResponse struct {
	Success bool               `json:"success"`
	Rates   map[string]float64 `json:"rates"`
}

type Service struct {
	cfg        *config.Config
	httpClient *http.Client

	mu       sync.Mutex
	lastRate float64
}

func New(cfg *config.Config) *Service {
	return &Service{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Exchange.TimeoutSeconds) * time.Second,
		},
	}
}

// GetRate busca a cotação atual na API de câmbio. Se a consulta falhar, a
// última cotação conhecida é reutilizada; sem cotação anterior, vale a
// taxa fixa de contingência configurada. Este método nunca retorna erro:
// a sincronização não pode parar por indisponibilidade da API de câmbio
func (s *Service) GetRate() float64 {
	rate, err := s.fetchRate()
	if err != nil {
		s.mu.Lock()
		defer s.mu.Unlock()

		if s.lastRate > 0 {
			logrus.WithError(err).Warnf("Erro ao buscar cotação, usando última cotação conhecida: %.2f", s.lastRate)
			return s.lastRate
		}

		logrus.WithError(err).Warnf("Erro ao buscar cotação, usando taxa de contingência: %.2f", s.cfg.Exchange.FallbackRate)
		return s.cfg.Exchange.FallbackRate
	}

	s.mu.Lock()
	s.lastRate = rate
	s.mu.Unlock()

	return rate
}

func (s *Service) fetchRate() (float64, error) {
	params := url.Values{}
	params.Add("base", s.cfg.Exchange.BaseCurrency)
	params.Add("symbols", s.cfg.Exchange.QuoteCurrency)

	requestURL := s.cfg.Exchange.URL + "?" + params.Encode()

	body, err := utils.MakeRequest(s.httpClient, requestURL)
	if err != nil {
		return 0, fmt.Errorf("erro ao consultar API de câmbio: %w", err)
	}

	var response rateResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return 0, fmt.Errorf("erro ao decodificar resposta da API de câmbio: %w", err)
	}

	rate, ok := response.Rates[s.cfg.Exchange.QuoteCurrency]
	if !ok || rate <= 0 {
		return 0, fmt.Errorf("cotação %s ausente na resposta da API de câmbio", s.cfg.Exchange.QuoteCurrency)
	}

	return rate, nil
}
