package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "session"

// Session parses the session cookie, if any, and injects userId and
// username into the context. An absent or invalid cookie is not an error
// here: public routes keep working and protected routes check via
// RequireLogin.
func Session(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(SessionCookie)
		if err != nil || strings.TrimSpace(raw) == "" {
			c.Next()
			return
		}

		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !token.Valid {
			log.Println("[SESSION] [ERROR] token validation failed:", err)
			c.Next()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.Next()
			return
		}

		userID, ok := claims["user_id"].(float64)
		if !ok || userID < 1 {
			log.Println("[SESSION] [ERROR] user_id claim missing")
			c.Next()
			return
		}
		username, _ := claims["username"].(string)

		c.Set("userId", int(userID))
		c.Set("username", username)
		c.Next()
	}
}

// RequireLogin rejects requests that carry no valid session.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get("userId"); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Login required"})
			return
		}
		c.Next()
	}
}
