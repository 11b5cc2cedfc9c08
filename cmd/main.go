package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"beerstock/config"
	"beerstock/internal/api/beer"
	"beerstock/internal/api/router"
	"beerstock/internal/api/user"
	"beerstock/internal/domain"
	"beerstock/internal/pkg/cache"
	"beerstock/internal/pkg/database"
	"beerstock/internal/pkg/logger"
	"beerstock/internal/pkg/token"
	"beerstock/internal/repository/beerrepo"
	"beerstock/internal/repository/userrepo"
	"beerstock/internal/service/beerservice"
	"beerstock/internal/service/userservice"
	"beerstock/migrations"
)

// @title BeerStock API
// @version 1.0
// @description Inventário de cervejas com unicidade por nome e limite de estoque.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	log.Println("⚡ Inicializando serviço BeerStock...")
	// O .env é opcional: em contêineres as variáveis vêm do ambiente.
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Aviso: Arquivo .env não encontrado ou erro de leitura. Carregando configs apenas do ambiente do sistema.")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Falha ao carregar configuração: %v", err)
	}

	appLog := logger.NewLogger(cfg.LogLevel)
	if zl, ok := appLog.(*logger.ZapLogger); ok {
		defer zl.Sync()
	}
	appLog.Info("Configurações carregadas.", map[string]interface{}{
		"env":          cfg.Environment,
		"store_driver": cfg.StoreDriver,
		"auth_enabled": cfg.AuthEnabled,
	})

	// 1. Cache (Redis), opcional
	var cacheClient cache.Client
	if cfg.RedisAddr != "" {
		redisClient, err := cache.NewRedisClient(cfg.RedisAddr)
		if err != nil {
			appLog.Warn("Redis indisponível; cache e rate limiting desativados.", map[string]interface{}{
				"addr":  cfg.RedisAddr,
				"error": err.Error(),
			})
		} else {
			defer redisClient.Close()
			cacheClient = redisClient
			appLog.Info("Conexão Redis estabelecida.", map[string]interface{}{"addr": cfg.RedisAddr})
		}
	}

	// 2. Armazenamento
	var (
		db       *sql.DB
		beerRepo domain.BeerRepository
	)
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		db, err = database.NewPostgresDB(cfg.DatabaseURL)
		if err != nil {
			appLog.Fatal("Falha ao conectar ao banco de dados.", err)
		}
		defer db.Close()
		appLog.Info("Conexão PostgreSQL estabelecida.", nil)

		if cfg.AutoMigrate {
			if err := database.Migrate(context.Background(), db, migrations.FS, "up"); err != nil {
				appLog.Fatal("Falha ao aplicar migrações.", err)
			}
			appLog.Info("Migrações aplicadas.", nil)
		}

		beerRepo = beerrepo.NewPostgresRepository(db, cacheClient, cfg.DBTimeout, cfg.CacheTTL, appLog)
	case config.StoreDriverMemory:
		beerRepo = beerrepo.NewMemoryRepository()
		appLog.Warn("Usando armazenamento em memória; os dados se perdem ao reiniciar.", nil)
	}

	// 3. Injeção de dependências: Repository -> Service -> Handler
	beerSvc := beerservice.NewService(beerRepo, appLog)
	beerHandler := beer.NewHandler(beerSvc, appLog)

	deps := router.Deps{
		BeerHandler:     beerHandler,
		Logger:          appLog,
		Cache:           cacheClient,
		RateLimit:       cfg.RateLimitMaxRequests,
		RateLimitPeriod: cfg.RateLimitPeriod,
	}

	if cfg.AuthEnabled {
		tokenSvc := token.NewService(cfg.JWTSecretKey, cfg.TokenExpiry)
		userRepo := userrepo.NewUserRepository(db, cfg.DBTimeout, appLog)
		userSvc := userservice.NewService(userRepo, tokenSvc, appLog)

		deps.UserHandler = user.NewHandler(userSvc, appLog)
		deps.TokenValidator = tokenSvc
		appLog.Info("Autenticação JWT ativada para as rotas de escrita.", nil)
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router.NewRouter(deps),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 4. Execução e Graceful Shutdown
	go func() {
		appLog.Info("Servidor BeerStock ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	appLog.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLog.Error("Desligamento do servidor forçado.", err)
	}

	appLog.Info("Servidor encerrado com sucesso.", nil)
}
