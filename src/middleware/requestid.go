package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID stamps every request with an X-Request-ID, generating one when
// the client did not send its own.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Set("requestId", id)
		ctx.Writer.Header().Set("X-Request-ID", id)
		ctx.Next()
	}
}
