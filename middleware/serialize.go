package middleware

import (
	"sync"

	"github.com/gin-gonic/gin"
)

// Serialize runs the rest of the chain while holding mu, so the checks of a
// write and the write itself see no other writer in between.
func Serialize(mu *sync.Mutex) gin.HandlerFunc {
	return func(c *gin.Context) {
		mu.Lock()
		defer mu.Unlock()
		c.Next()
	}
}
