package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"backend/internal/middleware"
	"backend/internal/models"
	"backend/internal/store"
)

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func Register(st *store.Store, jwtSecret string, sessionTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		username := strings.TrimSpace(req.Username)
		if len(username) < 3 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username must be at least 3 characters"})
			return
		}
		if len(req.Password) < 6 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 6 characters"})
			return
		}

		doc := st.Load()
		if doc.UserByUsername(username) != nil {
			log.Println("[AUTH] [ERROR] register username exists:", username)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username already exists"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Println("[AUTH] [ERROR] register password hash failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "password hash failed"})
			return
		}

		user := models.User{
			ID:           doc.NextUserID(),
			Username:     username,
			PasswordHash: string(hash),
		}
		doc.Users = append(doc.Users, user)

		if err := st.Save(doc); err != nil {
			log.Println("[AUTH] [ERROR] register save failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		if err := setSessionCookie(c, user, jwtSecret, sessionTTL); err != nil {
			log.Println("[AUTH] [ERROR] register session issue failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "session issue failed"})
			return
		}

		log.Println("[AUTH] [INFO] user registered:", username)
		c.JSON(http.StatusOK, gin.H{
			"message": "Registration successful",
			"user":    user.Public(),
		})
	}
}

func Login(st *store.Store, jwtSecret string, sessionTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		username := strings.TrimSpace(req.Username)

		doc := st.Load()
		user := doc.UserByUsername(username)
		if user == nil {
			log.Println("[AUTH] [ERROR] login unknown username")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			log.Println("[AUTH] [ERROR] login invalid credentials")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}

		if err := setSessionCookie(c, *user, jwtSecret, sessionTTL); err != nil {
			log.Println("[AUTH] [ERROR] login session issue failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "session issue failed"})
			return
		}

		log.Println("[AUTH] [INFO] login succeeded:", user.Username)
		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful",
			"user":    user.Public(),
		})
	}
}

func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
	}
}

func Me() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusOK, gin.H{"logged_in": false, "user": nil})
			return
		}
		username := c.GetString("username")
		c.JSON(http.StatusOK, gin.H{
			"logged_in": true,
			"user":      models.PublicUser{ID: userID, Username: username},
		})
	}
}

func setSessionCookie(c *gin.Context, user models.User, secret string, ttl time.Duration) error {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return err
	}
	c.SetCookie(middleware.SessionCookie, signed, int(ttl.Seconds()), "/", "", false, true)
	return nil
}
