package domain

import (
	"context"
	"errors"
	"strings"
)

// Beer representa um item do inventário (a Entidade).
// Invariante: 0 <= Quantity <= MaxQuantity após qualquer mutação.
type Beer struct {
	ID          string   `json:"id"` // Atribuído pelo repositório na criação, imutável depois
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Type        BeerType `json:"type"`
	Quantity    int      `json:"quantity"`
	MaxQuantity int      `json:"max_quantity"`
}

// BeerType é o conjunto fechado de estilos de cerveja aceitos.
type BeerType string

const (
	BeerTypeLager    BeerType = "LAGER"
	BeerTypeMaltBeer BeerType = "MALT_BEER"
	BeerTypeWitbier  BeerType = "WITBIER"
	BeerTypeWeiss    BeerType = "WEISS"
	BeerTypeAle      BeerType = "ALE"
	BeerTypeIPA      BeerType = "IPA"
	BeerTypeStout    BeerType = "STOUT"
)

var beerTypeDescriptions = map[BeerType]string{
	BeerTypeLager:    "Lager",
	BeerTypeMaltBeer: "Malzbier",
	BeerTypeWitbier:  "Witbier",
	BeerTypeWeiss:    "Weiss",
	BeerTypeAle:      "Ale",
	BeerTypeIPA:      "Ipa",
	BeerTypeStout:    "Stout",
}

// Nomes legados aceitos na entrada.
var beerTypeAliases = map[string]BeerType{
	"LARGER":     BeerTypeLager,
	"MALZBIER":   BeerTypeMaltBeer,
	"WHEAT_BEER": BeerTypeWitbier,
}

// BeerTypes lista todos os tipos na ordem de declaração.
func BeerTypes() []BeerType {
	return []BeerType{
		BeerTypeLager, BeerTypeMaltBeer, BeerTypeWitbier, BeerTypeWeiss,
		BeerTypeAle, BeerTypeIPA, BeerTypeStout,
	}
}

// ParseBeerType converte uma string (sem diferenciar maiúsculas) para BeerType.
func ParseBeerType(s string) (BeerType, bool) {
	key := strings.ToUpper(strings.TrimSpace(s))
	if alias, ok := beerTypeAliases[key]; ok {
		return alias, true
	}
	t := BeerType(key)
	if _, ok := beerTypeDescriptions[t]; ok {
		return t, true
	}
	return "", false
}

// IsValid informa se o tipo pertence ao conjunto fechado.
func (t BeerType) IsValid() bool {
	_, ok := beerTypeDescriptions[t]
	return ok
}

// Description devolve o nome legível do tipo.
func (t BeerType) Description() string {
	return beerTypeDescriptions[t]
}

// QuantityRequest é o payload de PATCH /inventory/{id}/increment|decrement.
// Ponteiro para distinguir "ausente" de zero.
type QuantityRequest struct {
	Quantity *int `json:"quantity"`
}

// MaxQuantityPerRequest é o limite de unidades por incremento/decremento.
const MaxQuantityPerRequest = 100

// --- Erros sentinela do Repositório ---
// O repositório sinaliza ausência e conflitos com estes valores;
// o serviço é a primeira camada que os traduz para erros tipados (AppError).

var (
	ErrBeerNotFound       = errors.New("beer not found")
	ErrDuplicateName      = errors.New("beer name already exists")
	ErrStockBoundViolated = errors.New("stock bound violated")
)

// --- Interfaces de Contrato ---

// BeerRepository é o contrato do armazenamento de registros (Record Store).
type BeerRepository interface {
	FindByName(ctx context.Context, name string) (Beer, error)
	// FindIDByName consulta o armazenamento sem passar por cache; é a leitura
	// usada na checagem de unicidade do nome.
	FindIDByName(ctx context.Context, name string) (string, error)
	FindByID(ctx context.Context, id string) (Beer, error)
	FindAll(ctx context.Context) ([]Beer, error)
	// Save insere (ID vazio) ou substitui (ID existente) o registro.
	Save(ctx context.Context, beer Beer) (Beer, error)
	DeleteByID(ctx context.Context, id string) error
	// AdjustQuantity soma delta à quantidade numa escrita condicional única:
	// só aplica se o resultado ficar em [0, MaxQuantity], senão ErrStockBoundViolated.
	AdjustQuantity(ctx context.Context, id string, delta int) (Beer, error)
}
