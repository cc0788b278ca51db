package middleware

import (
	"codista_lms/internal/config"
	"codista_lms/internal/model"
	"codista_lms/internal/util"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer token and attaches the decoded
// claims to the request. A missing token is 401; a token that fails
// verification (bad signature, expired) is 400, matching the API
// contract the web client expects.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			util.Unauthorized(c, "No token, authorization denied")
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.BadRequest(c, "Token is not valid")
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}

// RequireRole gates mutating operations on the caller's role claim.
func RequireRole(role model.UserRole, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := util.GetUserFromContext(c)
		if user == nil {
			util.Unauthorized(c, "No token, authorization denied")
			c.Abort()
			return
		}

		if user.Role != role {
			util.Forbidden(c, message)
			c.Abort()
			return
		}

		c.Next()
	}
}
