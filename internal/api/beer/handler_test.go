package beer_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"beerstock/internal/api/beer"
	"beerstock/internal/domain"
	apperror "beerstock/internal/errors"
	"beerstock/internal/pkg/logger"
	"beerstock/internal/repository/beerrepo"
	"beerstock/internal/service/beerservice"
)

const brahmaJSON = `{"name":"Brahma","brand":"Ambev","type":"LAGER","quantity":10,"max_quantity":50}`

// newMux monta as rotas do inventário sobre o serviço real com repositório em memória.
func newMux(svc beer.BeerService) *http.ServeMux {
	h := beer.NewHandler(svc, logger.NewNop())
	mux := http.NewServeMux()
	mux.HandleFunc("POST /inventory", h.CreateBeerHandler)
	mux.HandleFunc("GET /inventory", h.ListBeersHandler)
	mux.HandleFunc("GET /inventory/{name}", h.FindByNameHandler)
	mux.HandleFunc("PUT /inventory/{id}", h.UpdateBeerHandler)
	mux.HandleFunc("DELETE /inventory/{id}", h.DeleteBeerHandler)
	mux.HandleFunc("PATCH /inventory/{id}/increment", h.IncrementHandler)
	mux.HandleFunc("PATCH /inventory/{id}/decrement", h.DecrementHandler)
	return mux
}

func newInventoryMux() *http.ServeMux {
	return newMux(beerservice.NewService(beerrepo.NewMemoryRepository(), logger.NewNop()))
}

func do(t *testing.T, mux http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	mux.ServeHTTP(rec, req)
	return rec
}

func decodeBeer(t *testing.T, rec *httptest.ResponseRecorder) beer.BeerResponse {
	t.Helper()
	var resp beer.BeerResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) domain.ErrorResponse {
	t.Helper()
	var resp domain.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestInventoryRoutes_FullFlow(t *testing.T) {
	mux := newInventoryMux()

	rec := do(t, mux, http.MethodPost, "/inventory", brahmaJSON)
	require.Equal(t, http.StatusOK, rec.Code)
	created := decodeBeer(t, rec)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Lager", created.TypeDescription)

	rec = do(t, mux, http.MethodGet, "/inventory/Brahma", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created, decodeBeer(t, rec))

	rec = do(t, mux, http.MethodPatch, "/inventory/"+created.ID+"/increment", `{"quantity":10}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 20, decodeBeer(t, rec).Quantity)

	rec = do(t, mux, http.MethodPatch, "/inventory/"+created.ID+"/increment", `{"quantity":100}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "STOCK_EXCEEDED", decodeError(t, rec).Category)

	rec = do(t, mux, http.MethodPatch, "/inventory/"+created.ID+"/decrement", `{"quantity":21}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "STOCK_BELOW_ZERO", decodeError(t, rec).Category)

	rec = do(t, mux, http.MethodPatch, "/inventory/"+created.ID+"/decrement", `{"quantity":20}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, decodeBeer(t, rec).Quantity)

	rec = do(t, mux, http.MethodPut, "/inventory/"+created.ID, `{"name":"Brahma","brand":"AB InBev","type":"lager","quantity":5,"max_quantity":60}`)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBeer(t, rec)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "AB InBev", updated.Brand)

	rec = do(t, mux, http.MethodGet, "/inventory", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []beer.BeerResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, []beer.BeerResponse{updated}, list)

	rec = do(t, mux, http.MethodDelete, "/inventory/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, updated, decodeBeer(t, rec))

	rec = do(t, mux, http.MethodGet, "/inventory/Brahma", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = do(t, mux, http.MethodDelete, "/inventory/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListBeersHandler_EmptyIsArray(t *testing.T) {
	rec := do(t, newInventoryMux(), http.MethodGet, "/inventory", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCreateBeerHandler_DuplicateIsConflict(t *testing.T) {
	mux := newInventoryMux()
	require.Equal(t, http.StatusOK, do(t, mux, http.MethodPost, "/inventory", brahmaJSON).Code)

	rec := do(t, mux, http.MethodPost, "/inventory", brahmaJSON)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "ALREADY_REGISTERED", decodeError(t, rec).Category)
}

func TestCreateBeerHandler_Validation(t *testing.T) {
	long := strings.Repeat("a", 201)
	cases := map[string]string{
		"nome vazio":          `{"name":"","brand":"Ambev","type":"LAGER","quantity":1,"max_quantity":5}`,
		"nome longo":          `{"name":"` + long + `","brand":"Ambev","type":"LAGER","quantity":1,"max_quantity":5}`,
		"marca vazia":         `{"name":"Brahma","brand":" ","type":"LAGER","quantity":1,"max_quantity":5}`,
		"tipo invalido":       `{"name":"Brahma","brand":"Ambev","type":"PILSEN","quantity":1,"max_quantity":5}`,
		"quantity ausente":    `{"name":"Brahma","brand":"Ambev","type":"LAGER","max_quantity":5}`,
		"max ausente":         `{"name":"Brahma","brand":"Ambev","type":"LAGER","quantity":1}`,
		"quantity negativa":   `{"name":"Brahma","brand":"Ambev","type":"LAGER","quantity":-1,"max_quantity":5}`,
		"max acima do limite": `{"name":"Brahma","brand":"Ambev","type":"LAGER","quantity":1,"max_quantity":501}`,
		"quantity maior":      `{"name":"Brahma","brand":"Ambev","type":"LAGER","quantity":6,"max_quantity":5}`,
		"campo desconhecido":  `{"name":"Brahma","brand":"Ambev","type":"LAGER","quantity":1,"max_quantity":5,"id":"x"}`,
		"json malformado":     `{"name":`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := do(t, newInventoryMux(), http.MethodPost, "/inventory", body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "VALIDATION_ERROR", decodeError(t, rec).Category)
		})
	}
}

func TestCreateBeerHandler_AcceptsLegacyTypeAlias(t *testing.T) {
	rec := do(t, newInventoryMux(), http.MethodPost, "/inventory",
		`{"name":"Hoegaarden","brand":"AB InBev","type":"wheat_beer","quantity":0,"max_quantity":0}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "WITBIER", decodeBeer(t, rec).Type)
}

func TestAdjustHandlers_QuantityPayload(t *testing.T) {
	mux := newInventoryMux()
	created := decodeBeer(t, do(t, mux, http.MethodPost, "/inventory", brahmaJSON))

	for _, body := range []string{`{}`, `{"quantity":101}`, `{"quantity":-1}`, `{"quantity":"1"}`} {
		for _, op := range []string{"increment", "decrement"} {
			rec := do(t, mux, http.MethodPatch, "/inventory/"+created.ID+"/"+op, body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, "%s %s", op, body)
			assert.Equal(t, "VALIDATION_ERROR", decodeError(t, rec).Category, "%s %s", op, body)
		}
	}

	rec := do(t, mux, http.MethodPatch, "/inventory/missing/increment", `{"quantity":1}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateBeerHandler_NotFound(t *testing.T) {
	rec := do(t, newInventoryMux(), http.MethodPut, "/inventory/missing", brahmaJSON)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

type MockBeerService struct {
	mock.Mock
}

func (m *MockBeerService) CreateBeer(ctx context.Context, b domain.Beer) (domain.Beer, error) {
	args := m.Called(ctx, b)
	return args.Get(0).(domain.Beer), args.Error(1)
}

func (m *MockBeerService) FindByName(ctx context.Context, name string) (domain.Beer, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.Beer), args.Error(1)
}

func (m *MockBeerService) ListAll(ctx context.Context) ([]domain.Beer, error) {
	args := m.Called(ctx)
	beers, _ := args.Get(0).([]domain.Beer)
	return beers, args.Error(1)
}

func (m *MockBeerService) UpdateBeer(ctx context.Context, id string, b domain.Beer) (domain.Beer, error) {
	args := m.Called(ctx, id, b)
	return args.Get(0).(domain.Beer), args.Error(1)
}

func (m *MockBeerService) DeleteByID(ctx context.Context, id string) (domain.Beer, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Beer), args.Error(1)
}

func (m *MockBeerService) Increment(ctx context.Context, id string, amount int) (domain.Beer, error) {
	args := m.Called(ctx, id, amount)
	return args.Get(0).(domain.Beer), args.Error(1)
}

func (m *MockBeerService) Decrement(ctx context.Context, id string, amount int) (domain.Beer, error) {
	args := m.Called(ctx, id, amount)
	return args.Get(0).(domain.Beer), args.Error(1)
}

func TestHandler_InternalErrorHidesCause(t *testing.T) {
	svc := new(MockBeerService)
	svc.On("ListAll", mock.Anything).Return(nil, apperror.NewInternalError("Falha interna ao listar cervejas.", errors.New("pq: connection refused")))

	rec := do(t, newMux(svc), http.MethodGet, "/inventory", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestIncrementHandler_PassesAmountAndID(t *testing.T) {
	svc := new(MockBeerService)
	svc.On("Increment", mock.Anything, "abc", 0).
		Return(domain.Beer{ID: "abc", Name: "Brahma", Type: domain.BeerTypeLager, Quantity: 10, MaxQuantity: 50}, nil)

	rec := do(t, newMux(svc), http.MethodPatch, "/inventory/abc/increment", `{"quantity":0}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 10, decodeBeer(t, rec).Quantity)
	svc.AssertExpectations(t)
}
