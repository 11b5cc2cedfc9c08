package domain

// ErrorResponse é a estrutura padronizada para respostas de erro na API.
// @Description Estrutura padronizada para respostas de erro na API.
type ErrorResponse struct {
	Code     int    `json:"code" example:"400"`
	Category string `json:"category" example:"STOCK_EXCEEDED"`
	Message  string `json:"message" example:"Cerveja com ID 1: incremento de 100 ultrapassa a capacidade máxima de estoque."`
}
