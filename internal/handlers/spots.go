package handlers

import (
	"context"
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tourism_backend/internal/models"
)

// SpotStore : accès aux spots requis par les routes /spots.
type SpotStore interface {
	List(f models.SpotFilter) ([]models.TouristSpot, int, error)
	GetByID(id string) (*models.TouristSpot, error)
	Create(in models.SpotInput, createdBy string) (*models.TouristSpot, error)
	Update(id string, in models.SpotInput) (*models.TouristSpot, error)
	Delete(id string) error
	SearchLike(q string) ([]models.TouristSpot, error)
}

// SpotCacher : cache-aside devant les lectures unitaires.
type SpotCacher interface {
	Get(ctx context.Context, id string) (*models.SpotWithWeather, bool)
	Set(ctx context.Context, spot *models.SpotWithWeather)
	Invalidate(ctx context.Context, id string)
}

// WeatherProvider : décoration météo best-effort (nil sur échec).
type WeatherProvider interface {
	Get(ctx context.Context, lat, lng float64) *models.Weather
}

// SpotSearcher : index plein texte, dérivé de PostgreSQL.
type SpotSearcher interface {
	IndexSpot(spot models.TouristSpot)
	DeleteSpot(id string)
	Search(ctx context.Context, q string) ([]models.TouristSpot, error)
}

type SpotHandler struct {
	spots   SpotStore
	cache   SpotCacher
	weather WeatherProvider
	search  SpotSearcher
}

func NewSpotHandler(spots SpotStore, cache SpotCacher, weather WeatherProvider, search SpotSearcher) *SpotHandler {
	return &SpotHandler{spots: spots, cache: cache, weather: weather, search: search}
}

// parseSpotFilter lit les paramètres de GET /spots avec leurs défauts.
func parseSpotFilter(c *gin.Context) models.SpotFilter {
	f := models.SpotFilter{
		City:      c.Query("city"),
		State:     c.Query("state"),
		Country:   c.Query("country"),
		Search:    c.Query("search"),
		SortBy:    c.DefaultQuery("sortBy", "createdAt"),
		SortOrder: c.DefaultQuery("sortOrder", "desc"),
	}

	f.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if f.Page < 1 {
		f.Page = 1
	}
	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	if f.Limit < 1 {
		f.Limit = 10
	}
	if f.Limit > 100 {
		f.Limit = 100
	}

	if raw := c.Query("minRating"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			f.MinRating = v
			f.HasMin = true
		}
	}
	return f
}

// GET /spots
func (h *SpotHandler) List(c *gin.Context) {
	f := parseSpotFilter(c)

	spots, total, err := h.spots.List(f)
	if err != nil {
		log.Printf("❌ Erreur liste spots: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture spots"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": spots,
		"pagination": models.Pagination{
			Page:       f.Page,
			Limit:      f.Limit,
			Total:      total,
			TotalPages: int(math.Ceil(float64(total) / float64(f.Limit))),
		},
	})
}

// GET /spots/:id — cache-aside : Redis d'abord, sinon PostgreSQL +
// météo best-effort, mis en cache 1 heure.
func (h *SpotHandler) Get(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	if cached, ok := h.cache.Get(ctx, id); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	spot, err := h.spots.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Spot introuvable"})
			return
		}
		log.Printf("❌ Erreur lecture spot %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture spot"})
		return
	}

	decorated := &models.SpotWithWeather{
		TouristSpot: *spot,
		Weather:     h.weather.Get(ctx, spot.Lat, spot.Lng),
	}
	h.cache.Set(ctx, decorated)

	c.JSON(http.StatusOK, decorated)
}

// GET /spots/search?q= — Elasticsearch, repli SQL sur échec.
func (h *SpotHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "paramètre 'q' manquant"})
		return
	}

	spots, err := h.search.Search(c.Request.Context(), q)
	if err != nil {
		log.Printf("⚠️ Recherche Elastic indisponible, repli SQL: %v", err)
		spots, err = h.spots.SearchLike(q)
		if err != nil {
			log.Printf("❌ Erreur recherche spots: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur recherche"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"data": spots})
}

// POST /spots (authentifié)
func (h *SpotHandler) Create(c *gin.Context) {
	var input models.SpotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}

	spot, err := h.spots.Create(input, currentUserID(c))
	if err != nil {
		log.Printf("❌ Erreur création spot: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création spot"})
		return
	}

	go h.search.IndexSpot(*spot)

	c.JSON(http.StatusCreated, spot)
}

// PUT /spots/:id (propriétaire ou admin)
func (h *SpotHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var input models.SpotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}

	existing, err := h.spots.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Spot introuvable"})
			return
		}
		log.Printf("❌ Erreur lecture spot %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour spot"})
		return
	}

	if existing.CreatedBy != currentUserID(c) && !isAdmin(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Vous ne pouvez modifier que vos propres spots"})
		return
	}

	spot, err := h.spots.Update(id, input)
	if err != nil {
		log.Printf("❌ Erreur mise à jour spot %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour spot"})
		return
	}

	// Invalidation synchrone : une lecture qui suit ne doit jamais voir
	// l'ancienne valeur
	h.cache.Invalidate(c.Request.Context(), id)
	go h.search.IndexSpot(*spot)

	c.JSON(http.StatusOK, spot)
}

// DELETE /spots/:id (propriétaire ou admin). La cascade PostgreSQL
// emporte hébergements, notes et favoris ; les commentaires et photos
// MongoDB restent orphelins — incohérence connue et assumée.
func (h *SpotHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	existing, err := h.spots.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Spot introuvable"})
			return
		}
		log.Printf("❌ Erreur lecture spot %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression spot"})
		return
	}

	if existing.CreatedBy != currentUserID(c) && !isAdmin(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Vous ne pouvez supprimer que vos propres spots"})
		return
	}

	if err := h.spots.Delete(id); err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Spot introuvable"})
			return
		}
		log.Printf("❌ Erreur suppression spot %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression spot"})
		return
	}

	h.cache.Invalidate(c.Request.Context(), id)
	go h.search.DeleteSpot(id)

	c.JSON(http.StatusOK, gin.H{"message": "Spot supprimé avec succès"})
}
