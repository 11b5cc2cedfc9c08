package beer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"beerstock/internal/domain"
)

func intPtr(v int) *int { return &v }

func TestToDomain(t *testing.T) {
	got := ToDomain(BeerRequest{Name: "Brahma", Brand: "Ambev", Type: "larger", Quantity: intPtr(10), MaxQuantity: intPtr(50)})

	assert.Equal(t, domain.Beer{Name: "Brahma", Brand: "Ambev", Type: domain.BeerTypeLager, Quantity: 10, MaxQuantity: 50}, got)
}

func TestToResponseList_NeverNil(t *testing.T) {
	assert.NotNil(t, ToResponseList(nil))
	assert.Len(t, ToResponseList(nil), 0)
}

func TestValidate_Boundaries(t *testing.T) {
	ok := BeerRequest{Name: "a", Brand: "b", Type: "STOUT", Quantity: intPtr(500), MaxQuantity: intPtr(500)}
	assert.NoError(t, ok.Validate())

	zero := BeerRequest{Name: "a", Brand: "b", Type: "STOUT", Quantity: intPtr(0), MaxQuantity: intPtr(0)}
	assert.NoError(t, zero.Validate())
}

func TestValidateQuantityRequest(t *testing.T) {
	q, err := validateQuantityRequest(domain.QuantityRequest{Quantity: intPtr(100)})
	assert.NoError(t, err)
	assert.Equal(t, 100, q)

	_, err = validateQuantityRequest(domain.QuantityRequest{})
	assert.Error(t, err)
	_, err = validateQuantityRequest(domain.QuantityRequest{Quantity: intPtr(101)})
	assert.Error(t, err)
}
