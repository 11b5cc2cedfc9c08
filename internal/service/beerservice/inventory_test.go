package beerservice_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beerstock/internal/domain"
	apperror "beerstock/internal/errors"
	"beerstock/internal/pkg/logger"
	"beerstock/internal/repository/beerrepo"
	"beerstock/internal/service/beerservice"
)

// Estes testes exercitam o serviço contra o repositório em memória real.

func newInventory(t *testing.T) (*beerservice.Service, domain.Beer) {
	t.Helper()
	svc := beerservice.NewService(beerrepo.NewMemoryRepository(), logger.NewNop())

	created, err := svc.CreateBeer(context.Background(), domain.Beer{
		Name: "Brahma", Brand: "Ambev", Type: domain.BeerTypeLager, Quantity: 10, MaxQuantity: 50,
	})
	require.NoError(t, err)
	return svc, created
}

func TestInventory_CreateThenFindByName(t *testing.T) {
	svc, created := newInventory(t)

	found, err := svc.FindByName(context.Background(), "Brahma")

	require.NoError(t, err)
	assert.NotEmpty(t, found.ID)
	assert.Equal(t, created, found)
	assert.Equal(t, "Ambev", found.Brand)
	assert.Equal(t, domain.BeerTypeLager, found.Type)
	assert.Equal(t, 10, found.Quantity)
	assert.Equal(t, 50, found.MaxQuantity)
}

func TestInventory_CreateDuplicateNameAlwaysFails(t *testing.T) {
	svc, _ := newInventory(t)

	_, err := svc.CreateBeer(context.Background(), domain.Beer{
		Name: "Brahma", Brand: "Outra", Type: domain.BeerTypeStout, Quantity: 0, MaxQuantity: 1,
	})

	assert.IsType(t, &apperror.AlreadyRegisteredError{}, err)
}

func TestInventory_BrahmaScenario(t *testing.T) {
	svc, created := newInventory(t)
	ctx := context.Background()

	// Incremento de 100 sobre 10/50 -> 110 > 50
	_, err := svc.Increment(ctx, created.ID, 100)
	assert.IsType(t, &apperror.StockExceededError{}, err)

	// Decremento de 11 sobre 10 -> -1
	_, err = svc.Decrement(ctx, created.ID, 11)
	assert.IsType(t, &apperror.StockBelowZeroError{}, err)

	// Falhas não alteram o estoque
	unchanged, err := svc.FindByName(ctx, "Brahma")
	require.NoError(t, err)
	assert.Equal(t, 10, unchanged.Quantity)

	updated, err := svc.Increment(ctx, created.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, 20, updated.Quantity)
}

func TestInventory_IncrementBoundary(t *testing.T) {
	for a := 0; a <= 45; a++ {
		t.Run(fmt.Sprintf("amount=%d", a), func(t *testing.T) {
			svc, created := newInventory(t)

			_, err := svc.Increment(context.Background(), created.ID, a)

			if 10+a > 50 {
				assert.IsType(t, &apperror.StockExceededError{}, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInventory_DecrementBoundary(t *testing.T) {
	for a := 0; a <= 12; a++ {
		t.Run(fmt.Sprintf("amount=%d", a), func(t *testing.T) {
			svc, created := newInventory(t)

			updated, err := svc.Decrement(context.Background(), created.ID, a)

			if 10-a < 0 {
				assert.IsType(t, &apperror.StockBelowZeroError{}, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, 10-a, updated.Quantity)
			}
		})
	}
}

func TestInventory_IncrementThenDecrementRestores(t *testing.T) {
	for _, a := range []int{0, 1, 10, 40} {
		svc, created := newInventory(t)
		ctx := context.Background()

		_, err := svc.Increment(ctx, created.ID, a)
		require.NoError(t, err)
		restored, err := svc.Decrement(ctx, created.ID, a)
		require.NoError(t, err)

		assert.Equal(t, created.Quantity, restored.Quantity, "amount=%d", a)
	}
}

func TestInventory_DeleteRemovesAndReturnsSnapshot(t *testing.T) {
	svc, created := newInventory(t)
	ctx := context.Background()

	_, err := svc.Increment(ctx, created.ID, 5)
	require.NoError(t, err)

	deleted, err := svc.DeleteByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 15, deleted.Quantity)
	assert.Equal(t, created.ID, deleted.ID)

	_, err = svc.FindByName(ctx, "Brahma")
	assert.IsType(t, &apperror.NotFoundError{}, err)
	_, err = svc.Increment(ctx, created.ID, 1)
	assert.IsType(t, &apperror.NotFoundError{}, err)
	_, err = svc.DeleteByID(ctx, created.ID)
	assert.IsType(t, &apperror.NotFoundError{}, err)
}

func TestInventory_UpdateRenamesAndKeepsID(t *testing.T) {
	svc, created := newInventory(t)
	ctx := context.Background()

	_, err := svc.CreateBeer(ctx, domain.Beer{Name: "Skol", Brand: "Ambev", Type: domain.BeerTypeLager, MaxQuantity: 10})
	require.NoError(t, err)

	// Conflito com outra cerveja
	_, err = svc.UpdateBeer(ctx, created.ID, domain.Beer{Name: "Skol", Brand: "Ambev", Type: domain.BeerTypeLager, MaxQuantity: 10})
	assert.IsType(t, &apperror.AlreadyRegisteredError{}, err)

	// Mesmo nome da própria cerveja
	updated, err := svc.UpdateBeer(ctx, created.ID, domain.Beer{Name: "Brahma", Brand: "AB InBev", Type: domain.BeerTypeLager, Quantity: 3, MaxQuantity: 60})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "AB InBev", updated.Brand)
	assert.Equal(t, 60, updated.MaxQuantity)
}

func TestInventory_CreateOutOfBoundsStoresNothing(t *testing.T) {
	svc := beerservice.NewService(beerrepo.NewMemoryRepository(), logger.NewNop())
	ctx := context.Background()

	_, err := svc.CreateBeer(ctx, domain.Beer{Name: "Brahma", Brand: "Ambev", Type: domain.BeerTypeLager, Quantity: 60, MaxQuantity: 50})
	assert.IsType(t, &apperror.ValidationError{}, err)

	_, err = svc.CreateBeer(ctx, domain.Beer{Name: "Brahma", Brand: "Ambev", Type: domain.BeerTypeLager, Quantity: -5, MaxQuantity: 50})
	assert.IsType(t, &apperror.ValidationError{}, err)

	beers, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, beers)
}

func TestInventory_UpdateCannotLowerMaxBelowQuantity(t *testing.T) {
	svc, created := newInventory(t)
	ctx := context.Background()

	_, err := svc.UpdateBeer(ctx, created.ID, domain.Beer{Name: "Brahma", Brand: "Ambev", Type: domain.BeerTypeLager, Quantity: 10, MaxQuantity: 5})
	assert.IsType(t, &apperror.ValidationError{}, err)

	// O item continua íntegro para as operações seguintes.
	unchanged, err := svc.Increment(ctx, created.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 50, unchanged.MaxQuantity)
}

// staleReadRepo simula um cache que ainda devolve uma cerveja já removida.
type staleReadRepo struct {
	*beerrepo.MemoryRepository
	stale domain.Beer
}

func (r staleReadRepo) FindByName(ctx context.Context, name string) (domain.Beer, error) {
	if name == r.stale.Name {
		return r.stale, nil
	}
	return r.MemoryRepository.FindByName(ctx, name)
}

func TestInventory_UniquenessIgnoresStaleReads(t *testing.T) {
	repo := beerrepo.NewMemoryRepository()
	svc := beerservice.NewService(staleReadRepo{MemoryRepository: repo, stale: domain.Beer{ID: "removida", Name: "Brahma"}}, logger.NewNop())

	created, err := svc.CreateBeer(context.Background(), domain.Beer{
		Name: "Brahma", Brand: "Ambev", Type: domain.BeerTypeLager, Quantity: 10, MaxQuantity: 50,
	})

	require.NoError(t, err)
	assert.NotEqual(t, "removida", created.ID)
}

func TestInventory_ListAllEmpty(t *testing.T) {
	svc := beerservice.NewService(beerrepo.NewMemoryRepository(), logger.NewNop())

	beers, err := svc.ListAll(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, beers)
	assert.Len(t, beers, 0)
}
