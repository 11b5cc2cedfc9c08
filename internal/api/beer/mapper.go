package beer

import "beerstock/internal/domain"

// BeerRequest é o corpo de POST /inventory e PUT /inventory/{id}.
// Quantidades são ponteiros para detectar campos ausentes.
type BeerRequest struct {
	Name        string `json:"name" example:"Brahma"`
	Brand       string `json:"brand" example:"Ambev"`
	Type        string `json:"type" example:"LAGER"`
	Quantity    *int   `json:"quantity" example:"10"`
	MaxQuantity *int   `json:"max_quantity" example:"50"`
}

// BeerResponse é a representação de saída de uma cerveja.
type BeerResponse struct {
	ID              string `json:"id" example:"7f1c1a8e-3d4b-4c55-9e0a-1b2c3d4e5f60"`
	Name            string `json:"name" example:"Brahma"`
	Brand           string `json:"brand" example:"Ambev"`
	Type            string `json:"type" example:"LAGER"`
	TypeDescription string `json:"type_description" example:"Lager"`
	Quantity        int    `json:"quantity" example:"10"`
	MaxQuantity     int    `json:"max_quantity" example:"50"`
}

// ToDomain converte um BeerRequest já validado em domain.Beer (sem ID).
func ToDomain(req BeerRequest) domain.Beer {
	beerType, _ := domain.ParseBeerType(req.Type)

	beer := domain.Beer{
		Name:  req.Name,
		Brand: req.Brand,
		Type:  beerType,
	}
	if req.Quantity != nil {
		beer.Quantity = *req.Quantity
	}
	if req.MaxQuantity != nil {
		beer.MaxQuantity = *req.MaxQuantity
	}
	return beer
}

// ToResponse converte domain.Beer na representação de saída.
func ToResponse(beer domain.Beer) BeerResponse {
	return BeerResponse{
		ID:              beer.ID,
		Name:            beer.Name,
		Brand:           beer.Brand,
		Type:            string(beer.Type),
		TypeDescription: beer.Type.Description(),
		Quantity:        beer.Quantity,
		MaxQuantity:     beer.MaxQuantity,
	}
}

func ToResponseList(beers []domain.Beer) []BeerResponse {
	out := make([]BeerResponse, 0, len(beers))
	for _, b := range beers {
		out = append(out, ToResponse(b))
	}
	return out
}
