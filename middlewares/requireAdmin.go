package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func RequireAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if _, ok := SessionFromContext(ctx); !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}
		ctx.Next()
	}
}

// RequireAdmin gates the admin console routes on the role claim. The claim is
// decoded without verification, so this is UI gating only; the backend still
// authorizes every forwarded call.
func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		session, ok := SessionFromContext(ctx)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}

		if !session.IsAdmin() {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Admin access required"})
			return
		}

		ctx.Next()
	}
}
