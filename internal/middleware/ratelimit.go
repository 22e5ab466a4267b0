package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// client represents a rate-limited client with request count and window start.
type client struct {
	lastSeen time.Time
	count    int
}

// window is the rate limiting period; tests shorten it.
var window = time.Minute

// maxTrackedClients triggers a sweep of expired entries.
const maxTrackedClients = 10000

// RateLimiter is a simple in-memory middleware that limits the number of
// requests per client IP. It protects this service from callers; it does not
// throttle calls to the upstream provider.
//
// Behavior:
//   - Allows up to limit requests per window (one minute).
//   - Identifies clients by their IP address.
//   - If limit exceeded, returns HTTP 429 Too Many Requests.
//   - limit <= 0 disables the limiter.
//
// Response when limit exceeded:
//
//	HTTP/1.1 429 Too Many Requests
//	{
//	    "error": "rate limit exceeded"
//	}
func RateLimiter(limit int) gin.HandlerFunc {
	if limit <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	var (
		mu      sync.Mutex
		clients = make(map[string]*client)
	)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		mu.Lock()
		if len(clients) > maxTrackedClients {
			for k, v := range clients {
				if now.Sub(v.lastSeen) > window {
					delete(clients, k)
				}
			}
		}
		cl, ok := clients[ip]
		if !ok || now.Sub(cl.lastSeen) > window {
			cl = &client{lastSeen: now, count: 1}
			clients[ip] = cl
		} else {
			cl.count++
		}
		exceeded := cl.count > limit
		mu.Unlock()

		if exceeded {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}

		c.Next()
	}
}
