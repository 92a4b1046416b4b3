package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/snapwall/snapwall/utils"
)

// principalKey is the gin context key holding the authenticated Principal.
const principalKey = "principal"

// AuthRequired ensures the request carries a valid bearer credential and
// injects the verified Principal into the request context. Any failure
// short-circuits with 401 before the wrapped handler runs; the concrete
// verification failure is logged but never leaked to the client.
func AuthRequired(codec *utils.TokenCodec) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		if authHeader == "" {
			utils.Error(ctx, http.StatusUnauthorized, 40101, "unauthorized")
			ctx.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			utils.Error(ctx, http.StatusUnauthorized, 40102, "unauthorized")
			ctx.Abort()
			return
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			utils.Error(ctx, http.StatusUnauthorized, 40103, "unauthorized")
			ctx.Abort()
			return
		}

		principal, err := codec.Verify(tokenString)
		if err != nil {
			if utils.Sugar != nil {
				utils.Sugar.Infow("credential rejected", "ip", ctx.ClientIP(), "reason", err)
			}
			utils.Error(ctx, http.StatusUnauthorized, 40104, "unauthorized")
			ctx.Abort()
			return
		}

		ctx.Set(principalKey, principal)
		ctx.Next()
	}
}

// PrincipalFrom returns the Principal injected by AuthRequired.
func PrincipalFrom(ctx *gin.Context) (utils.Principal, bool) {
	v, exists := ctx.Get(principalKey)
	if !exists {
		return utils.Principal{}, false
	}
	p, ok := v.(utils.Principal)
	return p, ok
}
