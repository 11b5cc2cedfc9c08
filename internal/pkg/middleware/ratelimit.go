package middleware

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"beerstock/internal/domain"
	"beerstock/internal/pkg/cache"
	"beerstock/internal/pkg/httpx"
	"beerstock/internal/pkg/logger"
)

// RateLimiter aplica uma janela fixa por IP: no máximo limit requisições por period.
// Falhas do Redis não bloqueiam o tráfego.
func RateLimiter(client cache.Client, limit int, period time.Duration, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			key := "rate-limit:" + ip

			count, err := client.Incr(r.Context(), key, period)
			if err != nil {
				log.Error("Falha ao consultar rate limit no Redis.", err)
				next.ServeHTTP(w, r)
				return
			}

			remaining := limit - int(count)
			if remaining < 0 {
				remaining = 0
			}
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

			if int(count) > limit {
				w.Header().Set("Retry-After", strconv.Itoa(int(period.Seconds())))
				httpx.WriteJSON(w, log, http.StatusTooManyRequests, domain.ErrorResponse{
					Code:     http.StatusTooManyRequests,
					Category: "RATE_LIMITED",
					Message:  "Limite de requisições excedido.",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
