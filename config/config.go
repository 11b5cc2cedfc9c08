package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Drivers de armazenamento suportados.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Config armazena todas as configurações do aplicativo BeerStock.
type Config struct {
	// Geral
	Port        string
	Environment string
	LogLevel    string

	// Armazenamento
	StoreDriver string // "postgres" ou "memory"
	DatabaseURL string
	DBTimeout   time.Duration
	AutoMigrate bool // aplica as migrações embutidas na subida do servidor

	// Cache (Redis). RedisAddr vazio desliga cache e rate limiting.
	RedisAddr string
	CacheTTL  time.Duration

	// Segurança (JWT)
	AuthEnabled  bool
	JWTSecretKey string
	TokenExpiry  time.Duration

	// Rate Limiting
	RateLimitMaxRequests int
	RateLimitPeriod      time.Duration
}

// LoadConfig carrega as configurações a partir das variáveis de ambiente.
// Retorna erro quando uma variável obrigatória para a combinação escolhida está ausente.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		// 1. Geral
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		// 2. Armazenamento
		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", StoreDriverPostgres)),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		DBTimeout:   getDurationEnv("DB_TIMEOUT_SEC", 5) * time.Second,
		AutoMigrate: getBoolEnv("AUTO_MIGRATE", true),

		// 3. Cache (Redis)
		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		CacheTTL:  getDurationEnv("CACHE_TTL_SEC", 300) * time.Second,

		// 4. Segurança (JWT)
		AuthEnabled:  getBoolEnv("AUTH_ENABLED", false),
		JWTSecretKey: getEnv("JWT_SECRET_KEY", ""),
		TokenExpiry:  getDurationEnv("JWT_EXPIRY_MIN", 60) * time.Minute,

		// 5. Rate Limiting
		RateLimitMaxRequests: getIntEnv("RATE_LIMIT_MAX_REQUESTS", 100),
		RateLimitPeriod:      getDurationEnv("RATE_LIMIT_PERIOD_MIN", 1) * time.Minute,
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checa as combinações obrigatórias.
func (c *Config) validate() error {
	switch c.StoreDriver {
	case StoreDriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("erro de configuração: DATABASE_URL deve ser definida quando STORE_DRIVER=%s", StoreDriverPostgres)
		}
	case StoreDriverMemory:
	default:
		return fmt.Errorf("erro de configuração: STORE_DRIVER inválido %q (use %s ou %s)", c.StoreDriver, StoreDriverPostgres, StoreDriverMemory)
	}

	if c.AuthEnabled && c.JWTSecretKey == "" {
		return fmt.Errorf("erro de configuração: JWT_SECRET_KEY deve ser definida quando AUTH_ENABLED=true")
	}
	if c.AuthEnabled && c.StoreDriver != StoreDriverPostgres {
		return fmt.Errorf("erro de configuração: AUTH_ENABLED=true exige STORE_DRIVER=%s", StoreDriverPostgres)
	}
	return nil
}

// Funções Helpers (Auxiliares)

// getEnv lê a variável de ambiente ou retorna um valor padrão.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getDurationEnv lê uma variável de ambiente numérica e retorna-a como time.Duration.
func getDurationEnv(key string, defaultValue int) time.Duration {
	return time.Duration(getIntEnv(key, defaultValue))
}

// getIntEnv lê uma variável de ambiente numérica e retorna-a como int.
func getIntEnv(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("⚠️ Aviso: Valor de %s ('%s') não é um número inteiro válido. Usando padrão (%d).", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// getBoolEnv lê uma variável booleana (true/false/1/0).
func getBoolEnv(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("⚠️ Aviso: Valor de %s ('%s') não é booleano. Usando padrão (%t).", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
