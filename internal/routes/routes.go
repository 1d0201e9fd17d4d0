package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"tourism_backend/internal/handlers"
	"tourism_backend/internal/middleware"
)

// Deps : tout ce que le montage des routes reçoit de main.
type Deps struct {
	JWTSecret []byte
	Redis     *redis.Client

	Auth       *handlers.AuthHandler
	Spots      *handlers.SpotHandler
	Ratings    *handlers.RatingHandler
	Lodgings   *handlers.LodgingHandler
	Favorites  *handlers.FavoriteHandler
	Comments   *handlers.CommentHandler
	Photos     *handlers.PhotoHandler
	Export     *handlers.ExportHandler
	Import     *handlers.ImportHandler
	Directions *handlers.DirectionsHandler
}

func Register(r *gin.Engine, d Deps) {
	r.Use(cors.Default())

	auth := middleware.AuthRequired(d.JWTSecret)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Auth
	r.POST("/auth/register", middleware.RegisterRateLimit(d.Redis), d.Auth.Register)
	r.POST("/auth/login", middleware.LoginRateLimit(d.Redis), d.Auth.Login)
	r.GET("/auth/me", auth, d.Auth.Me)

	// Spots
	r.GET("/spots", d.Spots.List)
	r.GET("/spots/search", d.Spots.Search)
	r.GET("/spots/:id", d.Spots.Get)
	r.POST("/spots", auth, d.Spots.Create)
	r.PUT("/spots/:id", auth, d.Spots.Update)
	r.DELETE("/spots/:id", auth, d.Spots.Delete)

	// Notes
	r.GET("/ratings/spot/:spotId", d.Ratings.ListBySpot)
	r.GET("/ratings/spot/:spotId/my-rating", auth, d.Ratings.MyRating)
	r.POST("/ratings/spot/:spotId", auth, d.Ratings.Save)
	r.DELETE("/ratings/spot/:spotId", auth, d.Ratings.Delete)

	// Hébergements
	r.GET("/lodgings/spot/:spotId", d.Lodgings.ListBySpot)
	r.GET("/lodgings/:id", d.Lodgings.Get)
	r.POST("/lodgings", auth, d.Lodgings.Create)
	r.PUT("/lodgings/:id", auth, d.Lodgings.Update)
	r.DELETE("/lodgings/:id", auth, d.Lodgings.Delete)

	// Favoris
	r.GET("/favorites", auth, d.Favorites.List)
	r.POST("/favorites/:spotId", auth, d.Favorites.Create)
	r.DELETE("/favorites/:spotId", auth, d.Favorites.Delete)

	// Commentaires (MongoDB)
	r.GET("/comments/spot/:spotId", d.Comments.ListBySpot)
	r.POST("/comments/spot/:spotId", auth, d.Comments.Create)
	r.PUT("/comments/:commentId", auth, d.Comments.Update)
	r.DELETE("/comments/:commentId", auth, d.Comments.Delete)
	r.POST("/comments/:commentId/reply", auth, d.Comments.Reply)

	// Photos (MongoDB + MinIO)
	r.GET("/photos/spot/:spotId", d.Photos.ListBySpot)
	r.POST("/photos/spot/:spotId", auth, d.Photos.Upload)
	r.DELETE("/photos/:photoId", auth, d.Photos.Delete)

	// Itinéraires
	r.GET("/directions/spot/:spotId", d.Directions.Get)

	// Import/export
	r.GET("/export/spots", d.Export.Spots)
	r.POST("/import/spots", auth, middleware.RequireAdmin, d.Import.Spots)
}
