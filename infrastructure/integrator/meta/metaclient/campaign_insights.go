package metaclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/traffic-sync-engine/infrastructure/integrator/meta/domain"
)

type ResponseCampaignInsights struct {
	Data   []metadomain.CampaignInsight `json:"data"`
	Paging metadomain.Paging            `json:"paging"`
}

// GetCampaignInsights busca os insights de uma campanha para o preset de
// datas informado. A chamada passa pelo executor resiliente: erros
// temporários são repetidos com backoff e falhas consecutivas abrem o
// circuit breaker.
func (c *MetaClient) GetCampaignInsights(campaignID, datePreset string) (*metadomain.CampaignInsight, error) {
	baseURL := fmt.Sprintf("%s/%s/insights", c.Cfg.Meta.URL, campaignID)

	params := url.Values{}
	params.Add("fields", "campaign_id,campaign_name,spend,impressions,clicks,ctr,actions,action_values")
	params.Add("date_preset", datePreset)
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	requestURL := baseURL + "?" + params.Encode()

	var response ResponseCampaignInsights

	err := c.executor.Execute(func() error {
		resp, err := c.httpClient.Get(requestURL)
		if err != nil {
			logrus.WithError(err).Error("Erro ao fazer a requisição de insights")
			return err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("erro ao ler resposta de insights: %w", err)
		}

		if resp.StatusCode != http.StatusOK {
			return newAPIError(resp.StatusCode, body)
		}

		if err := json.Unmarshal(body, &response); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar JSON de insights")
			return fmt.Errorf("erro ao decodificar resposta de insights: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(response.Data) == 0 {
		return nil, nil
	}

	return &response.Data[0], nil
}

// newAPIError monta um APIError a partir de uma resposta com status não-2xx,
// tentando decodificar o corpo de erro padrão da API do Meta
func newAPIError(statusCode int, body []byte) *metadomain.APIError {
	apiErr := &metadomain.APIError{
		StatusCode: statusCode,
		Body:       string(body),
	}

	var errResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
		apiErr.Response = &errResp
	}

	return apiErr
}
