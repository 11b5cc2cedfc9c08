package beerservice

import (
	"context"
	"errors"

	"beerstock/internal/domain"
	apperror "beerstock/internal/errors"
	"beerstock/internal/pkg/logger"
)

// Service é o serviço de inventário: garante a unicidade do nome e o limite
// 0 <= quantity <= max_quantity em torno de cada mutação.
type Service struct {
	repo   domain.BeerRepository
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Cervejas.
func NewService(repo domain.BeerRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateBeer registra uma nova cerveja. O ID recebido é ignorado; o repositório atribui um novo.
func (s *Service) CreateBeer(ctx context.Context, beer domain.Beer) (domain.Beer, error) {
	s.logger.Debug("Iniciando criação de cerveja no serviço.", map[string]interface{}{"name": beer.Name})

	if err := verifyStockBounds(beer); err != nil {
		return domain.Beer{}, err
	}
	if err := s.verifyIfIsAlreadyRegistered(ctx, beer.Name, ""); err != nil {
		return domain.Beer{}, err
	}

	beer.ID = ""
	created, err := s.repo.Save(ctx, beer)
	if err != nil {
		return domain.Beer{}, s.translate(err, "Falha interna ao criar cerveja.", beer.Name, "")
	}

	s.logger.Info("Cerveja criada com sucesso.", map[string]interface{}{"id": created.ID, "name": created.Name})
	return created, nil
}

// FindByName busca uma cerveja pelo nome exato.
func (s *Service) FindByName(ctx context.Context, name string) (domain.Beer, error) {
	beer, err := s.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrBeerNotFound) {
			s.logger.Debug("Cerveja não encontrada por nome.", map[string]interface{}{"name": name})
			return domain.Beer{}, apperror.NewBeerNotFoundByName(name)
		}
		s.logger.Error("Falha ao buscar cerveja por nome no repositório.", err)
		return domain.Beer{}, apperror.NewInternalError("Falha interna ao buscar cerveja.", err)
	}
	return beer, nil
}

// ListAll devolve todas as cervejas na ordem natural do repositório (nunca nil).
func (s *Service) ListAll(ctx context.Context) ([]domain.Beer, error) {
	beers, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Falha ao listar cervejas no repositório.", err)
		return nil, apperror.NewInternalError("Falha interna ao listar cervejas.", err)
	}
	if beers == nil {
		beers = []domain.Beer{}
	}

	s.logger.Debug("Cervejas listadas.", map[string]interface{}{"count": len(beers)})
	return beers, nil
}

// UpdateBeer substitui todos os campos da cerveja id pelos de replacement (ID preservado).
// A checagem de unicidade exclui o próprio id: reenviar o nome atual não é conflito.
func (s *Service) UpdateBeer(ctx context.Context, id string, replacement domain.Beer) (domain.Beer, error) {
	s.logger.Debug("Iniciando atualização de cerveja no serviço.", map[string]interface{}{"id": id, "name": replacement.Name})

	if err := verifyStockBounds(replacement); err != nil {
		return domain.Beer{}, err
	}
	if err := s.verifyIfIsAlreadyRegistered(ctx, replacement.Name, id); err != nil {
		return domain.Beer{}, err
	}
	if _, err := s.verifyIfExists(ctx, id); err != nil {
		return domain.Beer{}, err
	}

	replacement.ID = id
	updated, err := s.repo.Save(ctx, replacement)
	if err != nil {
		return domain.Beer{}, s.translate(err, "Falha interna ao atualizar cerveja.", replacement.Name, id)
	}

	s.logger.Info("Cerveja atualizada com sucesso.", map[string]interface{}{"id": updated.ID, "name": updated.Name})
	return updated, nil
}

// DeleteByID remove a cerveja e devolve o retrato tirado antes da remoção.
func (s *Service) DeleteByID(ctx context.Context, id string) (domain.Beer, error) {
	snapshot, err := s.verifyIfExists(ctx, id)
	if err != nil {
		return domain.Beer{}, err
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return domain.Beer{}, s.translate(err, "Falha interna ao deletar cerveja.", "", id)
	}

	s.logger.Info("Cerveja deletada com sucesso.", map[string]interface{}{"id": id, "name": snapshot.Name})
	return snapshot, nil
}

// Increment soma amount ao estoque. Falha com StockExceeded se quantity+amount > max_quantity;
// a igualdade é permitida. Sem clamping: aplica tudo ou nada.
func (s *Service) Increment(ctx context.Context, id string, amount int) (domain.Beer, error) {
	if amount < 0 {
		return domain.Beer{}, apperror.NewValidationError("A quantidade a incrementar não pode ser negativa.")
	}

	beer, err := s.verifyIfExists(ctx, id)
	if err != nil {
		return domain.Beer{}, err
	}

	if beer.Quantity+amount > beer.MaxQuantity {
		s.logger.Warn("Incremento rejeitado: capacidade máxima excedida.", map[string]interface{}{
			"id": id, "quantity": beer.Quantity, "amount": amount, "max_quantity": beer.MaxQuantity,
		})
		return domain.Beer{}, apperror.NewStockExceededError(id, amount)
	}

	updated, err := s.repo.AdjustQuantity(ctx, id, amount)
	if err != nil {
		if errors.Is(err, domain.ErrStockBoundViolated) {
			// Outra escrita concorrente consumiu a folga entre a checagem e a escrita.
			return domain.Beer{}, apperror.NewStockExceededError(id, amount)
		}
		return domain.Beer{}, s.translate(err, "Falha interna ao incrementar estoque.", "", id)
	}

	s.logger.Info("Estoque incrementado.", map[string]interface{}{"id": id, "amount": amount, "new_quantity": updated.Quantity})
	return updated, nil
}

// Decrement subtrai amount do estoque. Falha com StockBelowZero se quantity-amount < 0;
// chegar exatamente a zero é permitido.
func (s *Service) Decrement(ctx context.Context, id string, amount int) (domain.Beer, error) {
	if amount < 0 {
		return domain.Beer{}, apperror.NewValidationError("A quantidade a decrementar não pode ser negativa.")
	}

	beer, err := s.verifyIfExists(ctx, id)
	if err != nil {
		return domain.Beer{}, err
	}

	if beer.Quantity-amount < 0 {
		s.logger.Warn("Decremento rejeitado: estoque ficaria negativo.", map[string]interface{}{
			"id": id, "quantity": beer.Quantity, "amount": amount,
		})
		return domain.Beer{}, apperror.NewStockBelowZeroError(id)
	}

	updated, err := s.repo.AdjustQuantity(ctx, id, -amount)
	if err != nil {
		if errors.Is(err, domain.ErrStockBoundViolated) {
			return domain.Beer{}, apperror.NewStockBelowZeroError(id)
		}
		return domain.Beer{}, s.translate(err, "Falha interna ao decrementar estoque.", "", id)
	}

	s.logger.Info("Estoque decrementado.", map[string]interface{}{"id": id, "amount": amount, "new_quantity": updated.Quantity})
	return updated, nil
}

// --- Verificações ---

// verifyStockBounds exige 0 <= Quantity <= MaxQuantity no registro a gravar.
func verifyStockBounds(beer domain.Beer) error {
	switch {
	case beer.MaxQuantity < 0:
		return apperror.NewValidationError("max_quantity não pode ser negativo.")
	case beer.Quantity < 0:
		return apperror.NewValidationError("quantity não pode ser negativo.")
	case beer.Quantity > beer.MaxQuantity:
		return apperror.NewValidationError("quantity não pode ser maior que max_quantity.")
	}
	return nil
}

// verifyIfIsAlreadyRegistered falha se name pertence a uma cerveja diferente de selfID.
func (s *Service) verifyIfIsAlreadyRegistered(ctx context.Context, name, selfID string) error {
	existingID, err := s.repo.FindIDByName(ctx, name)
	if errors.Is(err, domain.ErrBeerNotFound) {
		return nil
	}
	if err != nil {
		s.logger.Error("Falha ao verificar unicidade do nome.", err)
		return apperror.NewInternalError("Falha interna ao verificar nome da cerveja.", err)
	}
	if existingID == selfID {
		return nil
	}

	s.logger.Warn("Nome de cerveja já registrado.", map[string]interface{}{"name": name, "existing_id": existingID})
	return apperror.NewAlreadyRegisteredError(name)
}

// verifyIfExists busca pelo ID e converte ausência em NotFound.
func (s *Service) verifyIfExists(ctx context.Context, id string) (domain.Beer, error) {
	beer, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, domain.ErrBeerNotFound) {
		s.logger.Debug("Cerveja não encontrada por ID.", map[string]interface{}{"id": id})
		return domain.Beer{}, apperror.NewBeerNotFoundByID(id)
	}
	if err != nil {
		s.logger.Error("Falha ao buscar cerveja por ID no repositório.", err)
		return domain.Beer{}, apperror.NewInternalError("Falha interna ao buscar cerveja.", err)
	}
	return beer, nil
}

// translate converte os erros sentinela de escrita do repositório em AppError.
func (s *Service) translate(err error, internalMsg, name, id string) error {
	switch {
	case errors.Is(err, domain.ErrDuplicateName):
		return apperror.NewAlreadyRegisteredError(name)
	case errors.Is(err, domain.ErrBeerNotFound):
		return apperror.NewBeerNotFoundByID(id)
	case errors.Is(err, domain.ErrStockBoundViolated):
		return apperror.NewValidationError("quantity deve ficar entre 0 e max_quantity.")
	default:
		s.logger.Error(internalMsg, err)
		return apperror.NewInternalError(internalMsg, err)
	}
}
