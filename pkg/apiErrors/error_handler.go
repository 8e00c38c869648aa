package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro da API de relatórios
const (
	// Erros de dados de entrada (1000-1999)
	ErrMissingColumn = "DATA_001" // Coluna obrigatória ausente em uma fonte
	ErrEmptyDataset  = "DATA_002" // Fonte de dados sem registros
	ErrInvalidValue  = "DATA_003" // Valor que não pôde ser interpretado

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes

	// Erros do servidor (5000-5999)
	ErrInternalServer  = "SRV_001" // Erro interno do servidor
	ErrPipelineFailure = "SRV_002" // Falha na execução do pipeline
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrMissingColumn:       http.StatusUnprocessableEntity,
	ErrEmptyDataset:        http.StatusUnprocessableEntity,
	ErrInvalidValue:        http.StatusUnprocessableEntity,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrPipelineFailure:     http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
// Útil para quando você quer envolver um erro existente em um erro de API
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
