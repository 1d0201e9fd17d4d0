package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"tourism_backend/internal/cache"
	"tourism_backend/internal/config"
	"tourism_backend/internal/database"
	"tourism_backend/internal/handlers"
	"tourism_backend/internal/repository"
	"tourism_backend/internal/routes"
	"tourism_backend/internal/services"
)

func main() {
	config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	clients, err := database.Connect(ctx)
	if err != nil {
		log.Fatal("❌ ", err)
	}

	if err := clients.Migrate("migrations"); err != nil {
		log.Fatal("❌ Échec des migrations: ", err)
	}

	secret := []byte(config.Getenv("JWT_SECRET", ""))
	if len(secret) == 0 {
		log.Fatal("❌ JWT_SECRET manquant dans .env")
	}

	// Dépôts
	users := repository.NewUserRepository(clients.Postgres)
	spots := repository.NewSpotRepository(clients.Postgres)
	ratings := repository.NewRatingRepository(clients.Postgres)
	lodgings := repository.NewLodgingRepository(clients.Postgres)
	favorites := repository.NewFavoriteRepository(clients.Postgres)
	comments := repository.NewCommentRepository(clients.Mongo)
	photos := repository.NewPhotoRepository(clients.Mongo)

	// Services
	spotCache := cache.NewSpotCache(clients.Redis)
	weather := services.NewWeatherClient(config.Getenv("OPENWEATHER_API_KEY", ""))
	search := services.NewSpotIndex(clients.Elastic)
	storage := services.NewPhotoStorage(
		clients.MinIO,
		config.Getenv("MINIO_BUCKET", "tourism-photos"),
		config.Getenv("MINIO_PUBLIC_URL", ""),
	)

	r := gin.Default()
	routes.Register(r, routes.Deps{
		JWTSecret: secret,
		Redis:     clients.Redis,

		Auth:       handlers.NewAuthHandler(users, secret),
		Spots:      handlers.NewSpotHandler(spots, spotCache, weather, search),
		Ratings:    handlers.NewRatingHandler(ratings, spots, spotCache),
		Lodgings:   handlers.NewLodgingHandler(lodgings, spots),
		Favorites:  handlers.NewFavoriteHandler(favorites, spots),
		Comments:   handlers.NewCommentHandler(comments),
		Photos:     handlers.NewPhotoHandler(photos, storage),
		Export:     handlers.NewExportHandler(spots),
		Import:     handlers.NewImportHandler(spots),
		Directions: handlers.NewDirectionsHandler(spots),
	})

	port := config.Getenv("PORT", "8080")
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		log.Println("🚀 Serveur lancé sur le port", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("❌ Erreur serveur: ", err)
		}
	}()

	<-ctx.Done()
	log.Println("🛑 Arrêt demandé, fermeture en cours...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("⚠️ Arrêt forcé du serveur: %v", err)
	}
	clients.Close(shutdownCtx)
	log.Println("✅ Serveur arrêté proprement")
}
