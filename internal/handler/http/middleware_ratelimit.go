package http

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"golang.org/x/time/rate"
)

// idleLimiterTTL is how long an unused per-user limiter is kept.
const idleLimiterTTL = 10 * time.Minute

// rateLimiter holds one token bucket per user.
type rateLimiter struct {
	limit rate.Limit
	burst int

	mu          sync.Mutex
	limiters    map[int64]*userLimiter
	lastCleanup time.Time
	now         func() time.Time
}

type userLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// newRateLimiter allows perMinute requests per user with the given burst.
// A non-positive perMinute disables limiting.
func newRateLimiter(perMinute, burst int) *rateLimiter {
	if perMinute <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 1
	}

	return &rateLimiter{
		limit:       rate.Limit(float64(perMinute) / time.Minute.Seconds()),
		burst:       burst,
		limiters:    make(map[int64]*userLimiter),
		lastCleanup: time.Now(),
		now:         time.Now,
	}
}

func (rl *rateLimiter) get(userID int64) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastCleanup) > idleLimiterTTL {
		for id, l := range rl.limiters {
			if now.Sub(l.lastSeen) > idleLimiterTTL {
				delete(rl.limiters, id)
			}
		}
		rl.lastCleanup = now
	}

	l, ok := rl.limiters[userID]
	if !ok {
		l = &userLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.limiters[userID] = l
	}
	l.lastSeen = now

	return l.limiter
}

// withRateLimit throttles authenticated requests per user and answers 429
// with a Retry-After header once the bucket is empty. A nil limiter lets
// every request through.
func (h *Handler) withRateLimit(rl *rateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if rl == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := utils.GetUserIDFromContext(r.Context())
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			limiter := rl.get(userID)
			reservation := limiter.ReserveN(rl.now(), 1)
			if delay := reservation.DelayFrom(rl.now()); delay > 0 {
				reservation.Cancel()

				retryAfter := int(math.Ceil(delay.Seconds()))
				logger.FromRequest(r).Warn().
					Int64("user_id", userID).
					Int("retry_after", retryAfter).
					Msg("rate limit exceeded")

				w.Header().Set("Retry-After", strconv.Itoa(max(retryAfter, 1)))
				writeError(w, r, http.StatusTooManyRequests, http.StatusText(http.StatusTooManyRequests))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
