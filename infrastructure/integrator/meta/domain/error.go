package metadomain

import (
	"fmt"

	"github.com/vfg2006/traffic-sync-engine/pkg/resilience"
)

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	FBTraceID    string `json:"fbtrace_id"`
}

// IsTokenExpired verifica se o erro é de token expirado ou inválido.
// O código 190 representa "token expirado" nas respostas da API do Meta.
// Subcódigos relacionados a problemas de token: 460, 463, 467.
func (e *ErrorResponse) IsTokenExpired() bool {
	return e.Error.Code == 190 ||
		(e.Error.Type == "OAuthException" && (e.Error.ErrorSubcode == 460 || e.Error.ErrorSubcode == 463 || e.Error.ErrorSubcode == 467))
}

// IsTransient verifica se o erro é temporário e pode ser repetido.
// Códigos 4 e 17 são limites de requisição, 32 é limite por usuário
// e 80004 é limite de chamadas de insights.
func (e *ErrorResponse) IsTransient() bool {
	switch e.Error.Code {
	case 4, 17, 32, 80004:
		return true
	}
	return false
}

// APIError representa uma resposta de erro HTTP da API do Meta
type APIError struct {
	StatusCode int
	Response   *ErrorResponse
	Body       string
}

func (e *APIError) Error() string {
	if e.Response != nil && e.Response.Error.Message != "" {
		return fmt.Sprintf("meta api: status %d, código %d: %s", e.StatusCode, e.Response.Error.Code, e.Response.Error.Message)
	}
	return fmt.Sprintf("meta api: status %d: %s", e.StatusCode, e.Body)
}

// Retryable informa ao executor resiliente se a chamada pode ser repetida
func (e *APIError) Retryable() bool {
	if e.Response != nil {
		if e.Response.IsTokenExpired() {
			return false
		}
		if e.Response.IsTransient() {
			return true
		}
	}
	return resilience.IsRetryableStatusCode(e.StatusCode)
}

// IsTokenExpired verifica se o erro indica token expirado ou inválido
func (e *APIError) IsTokenExpired() bool {
	return e.Response != nil && e.Response.IsTokenExpired()
}
