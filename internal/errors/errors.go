package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError é a interface central para todos os erros customizados do BeerStock.
// Ela permite que o código externo (Handler) acesse a Categoria e a Mensagem do erro.
type AppError interface {
	Error() string    // Implementa a interface error padrão do Go
	Category() string // Categoria do erro (e.g., "VALIDATION_ERROR", "NOT_FOUND", "STOCK_EXCEEDED")
	HTTPStatus() int  // Código HTTP sugerido para o Handler
	Unwrap() error    // Permite encapsular erros subjacentes (original error)
}

// --- Erros de Entrada ---

// ValidationError representa falhas de validação de dados de entrada.
// É produzido na borda HTTP, antes de a requisição chegar ao serviço.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string    { return fmt.Sprintf("Erro de Validação: %s", e.Msg) }
func (e *ValidationError) Category() string { return "VALIDATION_ERROR" }
func (e *ValidationError) HTTPStatus() int  { return http.StatusBadRequest } // 400
func (e *ValidationError) Unwrap() error    { return nil }

// NewValidationError cria um novo erro de validação.
func NewValidationError(msg string) AppError {
	return &ValidationError{Msg: msg}
}

// UnauthorizedError representa credenciais ausentes ou inválidas.
type UnauthorizedError struct {
	Msg string
}

func (e *UnauthorizedError) Error() string    { return fmt.Sprintf("Não autorizado: %s", e.Msg) }
func (e *UnauthorizedError) Category() string { return "UNAUTHORIZED" }
func (e *UnauthorizedError) HTTPStatus() int  { return http.StatusUnauthorized } // 401
func (e *UnauthorizedError) Unwrap() error    { return nil }

// NewUnauthorizedError cria um novo erro de autorização.
func NewUnauthorizedError(msg string) AppError {
	return &UnauthorizedError{Msg: msg}
}

// --- Erros de Domínio (Inventário) ---

// NotFoundError representa a ausência de um recurso solicitado.
// Key guarda o nome ou o ID usado na busca.
type NotFoundError struct {
	Msg string
	Key string
}

func (e *NotFoundError) Error() string    { return fmt.Sprintf("Recurso não encontrado: %s", e.Msg) }
func (e *NotFoundError) Category() string { return "NOT_FOUND" }
func (e *NotFoundError) HTTPStatus() int  { return http.StatusNotFound } // 404
func (e *NotFoundError) Unwrap() error    { return nil }

// NewBeerNotFoundByName cria o NotFound para buscas por nome.
func NewBeerNotFoundByName(name string) AppError {
	return &NotFoundError{Msg: fmt.Sprintf("Cerveja com nome %s não encontrada.", name), Key: name}
}

// NewBeerNotFoundByID cria o NotFound para buscas por ID.
func NewBeerNotFoundByID(id string) AppError {
	return &NotFoundError{Msg: fmt.Sprintf("Cerveja com ID %s não encontrada.", id), Key: id}
}

// AlreadyRegisteredError indica que já existe uma cerveja com o mesmo nome.
type AlreadyRegisteredError struct {
	Name string
}

func (e *AlreadyRegisteredError) Error() string {
	return fmt.Sprintf("Cerveja com nome %s já está registrada no sistema.", e.Name)
}
func (e *AlreadyRegisteredError) Category() string { return "ALREADY_REGISTERED" }
func (e *AlreadyRegisteredError) HTTPStatus() int  { return http.StatusConflict } // 409
func (e *AlreadyRegisteredError) Unwrap() error    { return nil }

// NewAlreadyRegisteredError cria o erro de nome duplicado.
func NewAlreadyRegisteredError(name string) AppError {
	return &AlreadyRegisteredError{Name: name}
}

// StockExceededError indica que um incremento ultrapassaria a capacidade máxima.
type StockExceededError struct {
	ID     string
	Amount int
}

func (e *StockExceededError) Error() string {
	return fmt.Sprintf("Cerveja com ID %s: incremento de %d ultrapassa a capacidade máxima de estoque.", e.ID, e.Amount)
}
func (e *StockExceededError) Category() string { return "STOCK_EXCEEDED" }
func (e *StockExceededError) HTTPStatus() int  { return http.StatusBadRequest } // 400
func (e *StockExceededError) Unwrap() error    { return nil }

// NewStockExceededError cria o erro de estoque acima do máximo.
func NewStockExceededError(id string, amount int) AppError {
	return &StockExceededError{ID: id, Amount: amount}
}

// StockBelowZeroError indica que um decremento deixaria o estoque negativo.
type StockBelowZeroError struct {
	ID string
}

func (e *StockBelowZeroError) Error() string {
	return fmt.Sprintf("Estoque da cerveja com ID %s não pode ficar abaixo de zero.", e.ID)
}
func (e *StockBelowZeroError) Category() string { return "STOCK_BELOW_ZERO" }
func (e *StockBelowZeroError) HTTPStatus() int  { return http.StatusBadRequest } // 400
func (e *StockBelowZeroError) Unwrap() error    { return nil }

// NewStockBelowZeroError cria o erro de estoque negativo.
func NewStockBelowZeroError(id string) AppError {
	return &StockBelowZeroError{ID: id}
}

// ConflictError representa um conflito de estado genérico (e.g., e-mail de usuário duplicado).
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string    { return fmt.Sprintf("Conflito de estado: %s", e.Msg) }
func (e *ConflictError) Category() string { return "CONFLICT" }
func (e *ConflictError) HTTPStatus() int  { return http.StatusConflict } // 409
func (e *ConflictError) Unwrap() error    { return nil }

// NewConflictError cria um novo erro de conflito.
func NewConflictError(msg string) AppError {
	return &ConflictError{Msg: msg}
}

// --- Tipos de Erro de Infraestrutura (Encapsulamento) ---

// InternalError representa falhas inesperadas no servidor, serviço ou repositório.
type InternalError struct {
	Msg string
	Err error // Erro original subjacente (e.g., erro do driver SQL)
}

func (e *InternalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Erro Interno: %s: %v", e.Msg, e.Err)
	}
	return fmt.Sprintf("Erro Interno: %s", e.Msg)
}
func (e *InternalError) Category() string { return "INTERNAL_ERROR" }
func (e *InternalError) HTTPStatus() int  { return http.StatusInternalServerError } // 500
func (e *InternalError) Unwrap() error    { return e.Err }

// NewInternalError cria um erro de servidor (para falhas de lógica ou código não esperado).
func NewInternalError(msg string, err error) AppError {
	return &InternalError{Msg: msg, Err: err}
}

// NewDBError é um atalho para criar um InternalError específico de falhas no DB.
func NewDBError(msg string, err error) AppError {
	return NewInternalError(fmt.Sprintf("%s (DB)", msg), err)
}

// --- Helper para o Handler (Tradução Final) ---

// MapToHTTPStatus recebe um erro e o traduz para o código HTTP, a categoria e a mensagem.
// Percorre a cadeia de Unwrap, então erros embrulhados com %w continuam tipados.
// A mensagem de erros 500 é genérica para não vazar detalhes do banco.
func MapToHTTPStatus(err error) (int, string, string) {
	var appErr AppError
	if stderrors.As(err, &appErr) {
		if appErr.HTTPStatus() >= http.StatusInternalServerError {
			return appErr.HTTPStatus(), appErr.Category(), "Ocorreu um erro interno no servidor."
		}
		return appErr.HTTPStatus(), appErr.Category(), appErr.Error()
	}

	// Erro não tipado: tratar como erro interno genérico.
	return http.StatusInternalServerError, "UNKNOWN_ERROR", "Ocorreu um erro inesperado."
}
