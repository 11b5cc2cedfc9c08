package beer

import (
	"context"
	"net/http"

	"beerstock/internal/domain"
	"beerstock/internal/pkg/httpx"
	"beerstock/internal/pkg/logger"
	"beerstock/internal/pkg/middleware"
)

// BeerService define o contrato que o Handler espera da camada de Serviço.
type BeerService interface {
	CreateBeer(ctx context.Context, beer domain.Beer) (domain.Beer, error)
	FindByName(ctx context.Context, name string) (domain.Beer, error)
	ListAll(ctx context.Context) ([]domain.Beer, error)
	UpdateBeer(ctx context.Context, id string, replacement domain.Beer) (domain.Beer, error)
	DeleteByID(ctx context.Context, id string) (domain.Beer, error)
	Increment(ctx context.Context, id string, amount int) (domain.Beer, error)
	Decrement(ctx context.Context, id string, amount int) (domain.Beer, error)
}

// Handler agrupa todos os métodos de Handler do inventário de cervejas.
type Handler struct {
	Service BeerService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc BeerService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// CreateBeerHandler lida com POST /inventory.
// @Summary Cadastra uma cerveja
// @Description Cria uma cerveja no inventário. O nome deve ser único.
// @Tags inventory
// @Accept json
// @Produce json
// @Param beer body BeerRequest true "Dados da cerveja"
// @Success 200 {object} BeerResponse
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 409 {object} domain.ErrorResponse "Nome já registrado"
// @Router /inventory [post]
func (h *Handler) CreateBeerHandler(w http.ResponseWriter, r *http.Request) {
	var req BeerRequest
	if !h.decodeBeer(w, r, &req) {
		return
	}

	h.logActor(r, "Criação de cerveja solicitada.")

	created, err := h.Service.CreateBeer(r.Context(), ToDomain(req))
	if err != nil {
		httpx.WriteError(w, r, h.Logger, err)
		return
	}
	httpx.WriteJSON(w, h.Logger, http.StatusOK, ToResponse(created))
}

// FindByNameHandler lida com GET /inventory/{name}.
// @Summary Busca uma cerveja pelo nome
// @Tags inventory
// @Produce json
// @Param name path string true "Nome exato da cerveja"
// @Success 200 {object} BeerResponse
// @Failure 404 {object} domain.ErrorResponse "Cerveja não encontrada"
// @Router /inventory/{name} [get]
func (h *Handler) FindByNameHandler(w http.ResponseWriter, r *http.Request) {
	beer, err := h.Service.FindByName(r.Context(), r.PathValue("name"))
	if err != nil {
		httpx.WriteError(w, r, h.Logger, err)
		return
	}
	httpx.WriteJSON(w, h.Logger, http.StatusOK, ToResponse(beer))
}

// ListBeersHandler lida com GET /inventory.
// @Summary Lista todas as cervejas
// @Tags inventory
// @Produce json
// @Success 200 {array} BeerResponse
// @Router /inventory [get]
func (h *Handler) ListBeersHandler(w http.ResponseWriter, r *http.Request) {
	beers, err := h.Service.ListAll(r.Context())
	if err != nil {
		httpx.WriteError(w, r, h.Logger, err)
		return
	}
	httpx.WriteJSON(w, h.Logger, http.StatusOK, ToResponseList(beers))
}

// UpdateBeerHandler lida com PUT /inventory/{id}.
// @Summary Substitui os dados de uma cerveja
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "ID da cerveja"
// @Param beer body BeerRequest true "Novos dados"
// @Success 200 {object} BeerResponse
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 404 {object} domain.ErrorResponse "Cerveja não encontrada"
// @Failure 409 {object} domain.ErrorResponse "Nome pertence a outra cerveja"
// @Router /inventory/{id} [put]
func (h *Handler) UpdateBeerHandler(w http.ResponseWriter, r *http.Request) {
	var req BeerRequest
	if !h.decodeBeer(w, r, &req) {
		return
	}

	id := r.PathValue("id")
	h.logActor(r, "Atualização de cerveja solicitada.")

	updated, err := h.Service.UpdateBeer(r.Context(), id, ToDomain(req))
	if err != nil {
		httpx.WriteError(w, r, h.Logger, err)
		return
	}
	httpx.WriteJSON(w, h.Logger, http.StatusOK, ToResponse(updated))
}

// DeleteBeerHandler lida com DELETE /inventory/{id}.
// @Summary Remove uma cerveja
// @Description Remove a cerveja e devolve os dados que ela tinha no momento da remoção.
// @Tags inventory
// @Produce json
// @Param id path string true "ID da cerveja"
// @Success 200 {object} BeerResponse
// @Failure 404 {object} domain.ErrorResponse "Cerveja não encontrada"
// @Router /inventory/{id} [delete]
func (h *Handler) DeleteBeerHandler(w http.ResponseWriter, r *http.Request) {
	h.logActor(r, "Remoção de cerveja solicitada.")

	deleted, err := h.Service.DeleteByID(r.Context(), r.PathValue("id"))
	if err != nil {
		httpx.WriteError(w, r, h.Logger, err)
		return
	}
	httpx.WriteJSON(w, h.Logger, http.StatusOK, ToResponse(deleted))
}

// IncrementHandler lida com PATCH /inventory/{id}/increment.
// @Summary Incrementa o estoque
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "ID da cerveja"
// @Param quantity body domain.QuantityRequest true "Unidades (0 a 100)"
// @Success 200 {object} BeerResponse
// @Failure 400 {object} domain.ErrorResponse "Payload inválido ou capacidade máxima excedida"
// @Failure 404 {object} domain.ErrorResponse "Cerveja não encontrada"
// @Router /inventory/{id}/increment [patch]
func (h *Handler) IncrementHandler(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, h.Service.Increment)
}

// DecrementHandler lida com PATCH /inventory/{id}/decrement.
// @Summary Decrementa o estoque
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "ID da cerveja"
// @Param quantity body domain.QuantityRequest true "Unidades (0 a 100)"
// @Success 200 {object} BeerResponse
// @Failure 400 {object} domain.ErrorResponse "Payload inválido ou estoque ficaria negativo"
// @Failure 404 {object} domain.ErrorResponse "Cerveja não encontrada"
// @Router /inventory/{id}/decrement [patch]
func (h *Handler) DecrementHandler(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, h.Service.Decrement)
}

func (h *Handler) adjust(w http.ResponseWriter, r *http.Request, op func(context.Context, string, int) (domain.Beer, error)) {
	var req domain.QuantityRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, r, h.Logger, err)
		return
	}
	amount, err := validateQuantityRequest(req)
	if err != nil {
		httpx.WriteError(w, r, h.Logger, err)
		return
	}

	updated, err := op(r.Context(), r.PathValue("id"), amount)
	if err != nil {
		httpx.WriteError(w, r, h.Logger, err)
		return
	}
	httpx.WriteJSON(w, h.Logger, http.StatusOK, ToResponse(updated))
}

// decodeBeer decodifica e valida o corpo; em caso de falha já escreve a resposta 400.
func (h *Handler) decodeBeer(w http.ResponseWriter, r *http.Request, req *BeerRequest) bool {
	if err := httpx.DecodeJSON(w, r, req); err != nil {
		httpx.WriteError(w, r, h.Logger, err)
		return false
	}
	if err := req.Validate(); err != nil {
		httpx.WriteError(w, r, h.Logger, err)
		return false
	}
	return true
}

// logActor registra quem disparou a mutação quando a autenticação está ativa.
func (h *Handler) logActor(r *http.Request, msg string) {
	claims, ok := middleware.GetUserClaimsFromContext(r.Context())
	if !ok {
		return
	}
	h.Logger.Info(msg, map[string]interface{}{
		"user_id":    claims.UserID,
		"role":       string(claims.Role),
		"request_id": middleware.GetRequestID(r.Context()),
	})
}
