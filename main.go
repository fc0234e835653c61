package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"backend/internal/config"
	"backend/internal/handlers"
	"backend/internal/middleware"
	"backend/internal/store"
)

func main() {
	config.Load()

	st := store.Open(config.AppEnv.DBPath)
	log.Println("review store at:", config.AppEnv.DBPath)

	r := gin.Default()
	r.Use(middleware.CORS())

	api := r.Group("/api")
	api.Use(middleware.Session(config.AppEnv.JWTSecret))
	{
		api.POST("/register", handlers.Register(st, config.AppEnv.JWTSecret, config.AppEnv.SessionTTL))
		api.POST("/login", handlers.Login(st, config.AppEnv.JWTSecret, config.AppEnv.SessionTTL))
		api.POST("/logout", handlers.Logout())
		api.GET("/me", handlers.Me())

		api.GET("/venues", handlers.GetVenues(st))
		api.GET("/venues/:id", handlers.GetVenue(st))

		api.GET("/reviews", handlers.GetReviews(st))
		api.GET("/user/:id", handlers.GetUserProfile(st))
		api.GET("/feed", handlers.GetFeed(st))

		authed := api.Group("")
		authed.Use(middleware.RequireLogin())
		{
			authed.POST("/reviews/create", handlers.CreateReview(st))
			authed.PUT("/reviews/:id", handlers.UpdateReview(st))
			authed.DELETE("/reviews/:id/delete", handlers.DeleteReview(st))
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
