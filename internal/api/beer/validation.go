package beer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"beerstock/internal/domain"
	apperror "beerstock/internal/errors"
)

const (
	maxTextLength     = 200
	maxStockPerRecord = 500
)

// Validate aplica as regras de entrada antes de o pedido chegar ao serviço.
func (req BeerRequest) Validate() error {
	var problems []string

	problems = append(problems, checkText("name", req.Name)...)
	problems = append(problems, checkText("brand", req.Brand)...)

	if _, ok := domain.ParseBeerType(req.Type); !ok {
		problems = append(problems, fmt.Sprintf("type deve ser um de %v", domain.BeerTypes()))
	}

	problems = append(problems, checkStock("quantity", req.Quantity)...)
	problems = append(problems, checkStock("max_quantity", req.MaxQuantity)...)

	if req.Quantity != nil && req.MaxQuantity != nil && *req.Quantity > *req.MaxQuantity {
		problems = append(problems, "quantity não pode ser maior que max_quantity")
	}

	if len(problems) > 0 {
		return apperror.NewValidationError(strings.Join(problems, "; "))
	}
	return nil
}

func checkText(field, value string) []string {
	switch {
	case strings.TrimSpace(value) == "":
		return []string{field + " é obrigatório"}
	case utf8.RuneCountInString(value) > maxTextLength:
		return []string{fmt.Sprintf("%s deve ter no máximo %d caracteres", field, maxTextLength)}
	}
	return nil
}

func checkStock(field string, value *int) []string {
	switch {
	case value == nil:
		return []string{field + " é obrigatório"}
	case *value < 0:
		return []string{field + " não pode ser negativo"}
	case *value > maxStockPerRecord:
		return []string{fmt.Sprintf("%s deve ser no máximo %d", field, maxStockPerRecord)}
	}
	return nil
}

// validateQuantityRequest exige quantity presente e em [0, MaxQuantityPerRequest].
func validateQuantityRequest(req domain.QuantityRequest) (int, error) {
	if req.Quantity == nil {
		return 0, apperror.NewValidationError("quantity é obrigatório")
	}
	q := *req.Quantity
	if q < 0 || q > domain.MaxQuantityPerRequest {
		return 0, apperror.NewValidationError(
			fmt.Sprintf("quantity deve estar entre 0 e %d", domain.MaxQuantityPerRequest),
		)
	}
	return q, nil
}
