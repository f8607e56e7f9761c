package middleware

import (
	"net/http"
	"os"
	"strings"

	"tripmate/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware проверяет Bearer-токен и кладёт в контекст
// строковый user_id (sub) и полный набор claims.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == "OPTIONS" {
			c.Next()
			return
		}
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "result": nil, "error": "Missing or invalid Authorization header"})
			c.Abort()
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		// Проверяем чёрный список отозванных токенов
		if rdb := utils.GetRedis(); rdb != nil {
			_, err := rdb.Get(utils.RedisCtx(), "blacklist:"+token).Result()
			if err == nil {
				c.JSON(http.StatusUnauthorized, gin.H{"success": false, "result": nil, "error": "Token has been revoked"})
				c.Abort()
				return
			}
		}

		claims, err := utils.ParseJWT(token, os.Getenv("JWT_SECRET"))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "result": nil, "error": "Invalid or expired token"})
			c.Abort()
			return
		}
		sub, ok := claims["sub"].(string)
		if !ok || sub == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "result": nil, "error": "Invalid token payload"})
			c.Abort()
			return
		}
		c.Set("user_id", sub)
		c.Set("claims", claims)
		c.Next()
	}
}
