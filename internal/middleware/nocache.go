package middleware

import "github.com/gin-gonic/gin"

// NoCacheValue is sent on price responses so browsers and proxies never serve stale quotes.
const NoCacheValue = "no-store, no-cache, must-revalidate, post-check=0, pre-check=0"

// NoCache sets Cache-Control before the handler runs, so every response of the
// group carries it, including error bodies.
func NoCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", NoCacheValue)
		c.Next()
	}
}
