package middleware

import (
	"strings"

	"quiz_app_backend/internal/config"
	"quiz_app_backend/internal/model"
	"quiz_app_backend/internal/service"
	"quiz_app_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware exige um bearer token válido e não revogado, e deixa as
// claims no contexto.
func AuthMiddleware(cfg *config.Config, tokens *service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			util.Unauthorized(c, "Usuário não autenticado. Não há sessão ativa.")
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c, "Token inválido ou expirado.")
			c.Abort()
			return
		}

		revoked, err := tokens.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil || revoked {
			util.Unauthorized(c, "Usuário não autenticado. Não há sessão ativa.")
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}

// RequireRole é a checagem de papel por igualdade simples; sem hierarquia.
func RequireRole(role model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		if claims == nil {
			util.Unauthorized(c, "Usuário não autenticado. Não há sessão ativa.")
			c.Abort()
			return
		}

		if claims.Role != role {
			util.Forbidden(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
