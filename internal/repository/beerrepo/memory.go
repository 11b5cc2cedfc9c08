package beerrepo

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"beerstock/internal/domain"
)

// MemoryRepository é um domain.BeerRepository em memória, usado com STORE_DRIVER=memory e em testes.
// Um único mutex serializa as operações, então AdjustQuantity é atômico e a
// unicidade do nome é checada dentro da mesma seção crítica da escrita.
type MemoryRepository struct {
	mu    sync.RWMutex
	beers map[string]domain.Beer
	order []string // ordem de inserção (ordem natural do FindAll)
}

var _ domain.BeerRepository = (*MemoryRepository)(nil)

// NewMemoryRepository cria um repositório vazio.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{beers: make(map[string]domain.Beer)}
}

func (r *MemoryRepository) FindByName(ctx context.Context, name string) (domain.Beer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if b := r.beers[id]; b.Name == name {
			return b, nil
		}
	}
	return domain.Beer{}, domain.ErrBeerNotFound
}

func (r *MemoryRepository) FindIDByName(ctx context.Context, name string) (string, error) {
	b, err := r.FindByName(ctx, name)
	if err != nil {
		return "", err
	}
	return b.ID, nil
}

func (r *MemoryRepository) FindByID(ctx context.Context, id string) (domain.Beer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.beers[id]
	if !ok {
		return domain.Beer{}, domain.ErrBeerNotFound
	}
	return b, nil
}

func (r *MemoryRepository) FindAll(ctx context.Context) ([]domain.Beer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	beers := make([]domain.Beer, 0, len(r.order))
	for _, id := range r.order {
		beers = append(beers, r.beers[id])
	}
	return beers, nil
}

// Save insere quando beer.ID está vazio (gerando um UUID) e substitui o registro caso contrário.
func (r *MemoryRepository) Save(ctx context.Context, beer domain.Beer) (domain.Beer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if beer.Quantity < 0 || beer.Quantity > beer.MaxQuantity {
		return domain.Beer{}, domain.ErrStockBoundViolated
	}

	if beer.ID != "" {
		if _, ok := r.beers[beer.ID]; !ok {
			return domain.Beer{}, domain.ErrBeerNotFound
		}
	}

	for id, existing := range r.beers {
		if existing.Name == beer.Name && id != beer.ID {
			return domain.Beer{}, domain.ErrDuplicateName
		}
	}

	if beer.ID == "" {
		beer.ID = uuid.New().String()
		r.order = append(r.order, beer.ID)
	}
	r.beers[beer.ID] = beer
	return beer, nil
}

func (r *MemoryRepository) DeleteByID(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.beers[id]; !ok {
		return domain.ErrBeerNotFound
	}
	delete(r.beers, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *MemoryRepository) AdjustQuantity(ctx context.Context, id string, delta int) (domain.Beer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.beers[id]
	if !ok {
		return domain.Beer{}, domain.ErrBeerNotFound
	}

	newQuantity := b.Quantity + delta
	if newQuantity < 0 || newQuantity > b.MaxQuantity {
		return domain.Beer{}, domain.ErrStockBoundViolated
	}

	b.Quantity = newQuantity
	r.beers[id] = b
	return b, nil
}
