package metaclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/traffic-sync-engine/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/traffic-sync-engine/internal/domain"
)

// IntrospectToken consulta o endpoint debug_token para verificar a
// validade do token de acesso configurado. Falhas de transporte não são
// tratadas como token inválido: o estado retornado é "unknown" e a
// sincronização segue normalmente.
func (c *MetaClient) IntrospectToken() (*domain.TokenStatus, error) {
	endpoint := fmt.Sprintf("%s/%s/debug_token", c.Cfg.Meta.BaseURL, c.Cfg.Meta.Version)

	params := url.Values{}
	params.Add("input_token", c.Cfg.Meta.AccessToken)
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	requestURL := endpoint + "?" + params.Encode()

	client := &http.Client{
		Timeout: c.Cfg.Meta.TokenCheckTimeout(),
	}

	resp, err := client.Get(requestURL)
	if err != nil {
		logrus.WithError(err).Warn("Não foi possível verificar o token, seguindo com estado desconhecido")
		return &domain.TokenStatus{State: domain.TokenUnknown}, nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao ler resposta do debug_token, seguindo com estado desconhecido")
		return &domain.TokenStatus{State: domain.TokenUnknown}, nil
	}

	var debugResp metadomain.DebugTokenResponse
	if err := json.Unmarshal(body, &debugResp); err != nil {
		logrus.WithError(err).Warn("Erro ao decodificar resposta do debug_token, seguindo com estado desconhecido")
		return &domain.TokenStatus{State: domain.TokenUnknown}, nil
	}

	if debugResp.Data.Error != nil && debugResp.Data.Error.Code == 190 {
		logrus.WithField("message", debugResp.Data.Error.Message).Error("Token de acesso expirado ou revogado")
		return &domain.TokenStatus{State: domain.TokenInvalid}, nil
	}

	// Erros transitórios do próprio debug_token (5xx, 429) chegam como
	// envelope {"error":{...}} sem o campo data preenchido. Só o código
	// 190 condena o token; qualquer outra falha vira estado desconhecido
	if resp.StatusCode != http.StatusOK {
		logrus.WithField("status_code", resp.StatusCode).Warn("debug_token indisponível, seguindo com estado desconhecido")
		return &domain.TokenStatus{State: domain.TokenUnknown}, nil
	}

	if !debugResp.Data.IsValid {
		return &domain.TokenStatus{State: domain.TokenInvalid}, nil
	}

	status := &domain.TokenStatus{State: domain.TokenValid}
	if debugResp.Data.ExpiresAt > 0 {
		expiresAt := time.Unix(debugResp.Data.ExpiresAt, 0)

		// A API pode responder is_valid=true com expiração já vencida;
		// um token vencido não serve para sincronizar
		if !expiresAt.After(time.Now()) {
			logrus.WithField("expires_at", expiresAt.Format(time.RFC3339)).Error("Token de acesso com validade vencida")
			return &domain.TokenStatus{State: domain.TokenInvalid, ExpiresAt: &expiresAt}, nil
		}

		status.ExpiresAt = &expiresAt
	}

	return status, nil
}
