package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"blogcms/internal/logger"
	"blogcms/internal/utils/helpers"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit ограничивает число запросов с одного IP за окно window.
// Состояние живёт в памяти процесса; устаревшие записи подчищаются фоном.
func RateLimit(limit int, window time.Duration) func(http.Handler) http.Handler {
	var (
		mu       sync.Mutex
		visitors = make(map[string]*visitor)
	)

	go func() {
		for range time.Tick(window) {
			mu.Lock()
			for ip, v := range visitors {
				if time.Since(v.lastSeen) > window {
					delete(visitors, ip)
				}
			}
			mu.Unlock()
		}
	}()

	getLimiter := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()

		v, ok := visitors[ip]
		if !ok {
			v = &visitor{
				limiter: rate.NewLimiter(rate.Every(window/time.Duration(limit)), limit),
			}
			visitors[ip] = v
		}
		v.lastSeen = time.Now()
		return v.limiter
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			if !getLimiter(ip).Allow() {
				logger.WithCtx(r.Context()).Warn("Превышен лимит запросов",
					zap.String("ip", ip), zap.String("path", r.URL.Path))
				helpers.Error(w, http.StatusTooManyRequests, "Слишком много запросов. Повторите позже.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
