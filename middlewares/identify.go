package middlewares

import (
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/streetware/gateway/state"
)

const sessionKey = "session"

// Identify resolves the caller's session from the token cookie or the
// Authorization header. A malformed token is discarded silently: the cookie is
// cleared and the request proceeds unauthenticated.
func Identify() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := tokenFromRequest(ctx)
		if token == "" {
			ctx.Next()
			return
		}

		session, err := state.DecodeSession(token)
		if err != nil {
			log.Println("Error parsing token:", err)
			ClearTokenCookie(ctx)
			ctx.Next()
			return
		}

		ctx.Set(sessionKey, session)
		ctx.Next()
	}
}

func tokenFromRequest(ctx *gin.Context) string {
	if cookie, err := ctx.Cookie(state.TokenCookieName); err == nil && cookie != "" {
		return cookie
	}
	authHeader := ctx.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// SessionFromContext returns the decoded session, if the request carried a
// usable token.
func SessionFromContext(ctx *gin.Context) (state.Session, bool) {
	value, exists := ctx.Get(sessionKey)
	if !exists {
		return state.Session{}, false
	}
	session, ok := value.(state.Session)
	return session, ok
}

const tokenCookieMaxAge = 30 * 24 * 60 * 60

// SetTokenCookie persists the bearer token under the fixed cookie name.
func SetTokenCookie(ctx *gin.Context, token string) {
	ctx.SetCookie(state.TokenCookieName, token, tokenCookieMaxAge, "/", "", false, true)
}

func ClearTokenCookie(ctx *gin.Context) {
	ctx.SetCookie(state.TokenCookieName, "", -1, "/", "", false, true)
}
