package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"beerstock/internal/domain"
	apperror "beerstock/internal/errors"
	"beerstock/internal/pkg/logger"
)

// WriteJSON serializa data com o status informado.
func WriteJSON(w http.ResponseWriter, log logger.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error("Falha ao codificar JSON de resposta", err)
	}
}

// WriteError traduz o erro via apperror.MapToHTTPStatus e escreve o corpo padronizado.
// Erros 5xx são registrados como Error; erros de cliente como Debug.
func WriteError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= http.StatusInternalServerError {
		log.Error(fmt.Sprintf("Erro de Servidor: %s %s", r.Method, r.URL.Path), err)
	} else {
		log.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category), map[string]interface{}{
			"method": r.Method,
			"path":   r.URL.Path,
		})
	}

	WriteJSON(w, log, status, domain.ErrorResponse{
		Code:     status,
		Category: category,
		Message:  message,
	})
}

// MaxBodyBytes limita o tamanho dos corpos JSON aceitos.
const MaxBodyBytes = 1 << 20

// DecodeJSON lê um único objeto JSON de r.Body em dst, rejeitando campos
// desconhecidos e corpos maiores que MaxBodyBytes.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return apperror.NewValidationError("Corpo da requisição excede o tamanho máximo permitido.")
		}
		if errors.Is(err, io.EOF) {
			return apperror.NewValidationError("Corpo da requisição vazio.")
		}
		return apperror.NewValidationError(fmt.Sprintf("Payload JSON inválido: %v", err))
	}
	if dec.More() {
		return apperror.NewValidationError("Payload JSON inválido: mais de um objeto no corpo.")
	}
	return nil
}
