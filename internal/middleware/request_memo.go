package middleware

import (
	"github.com/SscSPs/notion_quote_viewer/internal/platform/cache"
	"github.com/gin-gonic/gin"
)

// RequestMemo gives every request its own lookup memo so repeated reads of the
// same record during one render hit the document store once.
func RequestMemo() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := cache.WithMemo(c.Request.Context(), cache.NewMemo())
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
