package router

import (
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "beerstock/docs" // registra o documento OpenAPI servido em /swagger/
	"beerstock/internal/api/beer"
	"beerstock/internal/api/user"
	"beerstock/internal/domain"
	"beerstock/internal/pkg/cache"
	"beerstock/internal/pkg/logger"
	"beerstock/internal/pkg/middleware"
)

// Prefixos em que as rotas do inventário são montadas.
var InventoryPrefixes = []string{"/inventory", "/api/v1/beer"}

// Deps reúne os Handlers e a infraestrutura opcional do roteador.
type Deps struct {
	BeerHandler *beer.Handler
	Logger      logger.Logger

	// UserHandler e TokenValidator juntos ativam /v1/register, /v1/login e a
	// autenticação das rotas de escrita. Nil deixa o inventário aberto.
	UserHandler    *user.Handler
	TokenValidator middleware.TokenValidator

	// Cache nil desativa o rate limiter.
	Cache           cache.Client
	RateLimit       int
	RateLimitPeriod time.Duration
}

// NewRouter configura e retorna o roteador HTTP principal.
func NewRouter(deps Deps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /ping", PingHandler)
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	authEnabled := deps.UserHandler != nil && deps.TokenValidator != nil
	if authEnabled {
		mux.HandleFunc("POST /v1/register", deps.UserHandler.RegisterUserHandler)
		mux.HandleFunc("POST /v1/login", deps.UserHandler.LoginUserHandler)
	}

	// Escrita exige token; remoção exige admin.
	write := func(h http.HandlerFunc) http.Handler { return h }
	admin := write
	if authEnabled {
		auth := middleware.NewAuthMiddleware(deps.TokenValidator, deps.Logger)
		write = func(h http.HandlerFunc) http.Handler { return auth(h) }
		admin = func(h http.HandlerFunc) http.Handler {
			return middleware.Chain(h, auth, middleware.PermissionMiddleware(deps.Logger, domain.RoleAdmin))
		}
	}

	h := deps.BeerHandler
	for _, p := range InventoryPrefixes {
		mux.HandleFunc("GET "+p, h.ListBeersHandler)
		mux.HandleFunc("GET "+p+"/{name}", h.FindByNameHandler)
		mux.Handle("POST "+p, write(h.CreateBeerHandler))
		mux.Handle("PUT "+p+"/{id}", write(h.UpdateBeerHandler))
		mux.Handle("PATCH "+p+"/{id}/increment", write(h.IncrementHandler))
		mux.Handle("PATCH "+p+"/{id}/decrement", write(h.DecrementHandler))
		mux.Handle("DELETE "+p+"/{id}", admin(h.DeleteBeerHandler))
	}

	mws := []func(http.Handler) http.Handler{middleware.RequestLogger(deps.Logger)}
	if deps.Cache != nil {
		mws = append(mws, middleware.RateLimiter(deps.Cache, deps.RateLimit, deps.RateLimitPeriod, deps.Logger))
	}
	return middleware.Chain(mux, mws...)
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
