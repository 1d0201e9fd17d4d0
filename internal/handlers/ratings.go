package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tourism_backend/internal/models"
)

// RatingStore : notes + recalcul transactionnel de la moyenne.
type RatingStore interface {
	ListBySpot(spotID string) ([]models.Rating, error)
	GetByUserAndSpot(userID, spotID string) (*models.Rating, error)
	Save(spotID, userID string, in models.RatingInput) (*models.Rating, bool, error)
	Delete(spotID, userID string) error
}

// spotGetter : vérification d'existence du spot parent.
type spotGetter interface {
	GetByID(id string) (*models.TouristSpot, error)
}

type RatingHandler struct {
	ratings RatingStore
	spots   spotGetter
	cache   SpotCacher
}

func NewRatingHandler(ratings RatingStore, spots spotGetter, cache SpotCacher) *RatingHandler {
	return &RatingHandler{ratings: ratings, spots: spots, cache: cache}
}

// GET /ratings/spot/:spotId
func (h *RatingHandler) ListBySpot(c *gin.Context) {
	ratings, err := h.ratings.ListBySpot(c.Param("spotId"))
	if err != nil {
		log.Printf("❌ Erreur lecture notes: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture notes"})
		return
	}
	c.JSON(http.StatusOK, ratings)
}

// GET /ratings/spot/:spotId/my-rating — null JSON quand l'utilisateur
// n'a pas encore noté (pas un 404).
func (h *RatingHandler) MyRating(c *gin.Context) {
	rating, err := h.ratings.GetByUserAndSpot(currentUserID(c), c.Param("spotId"))
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusOK, nil)
			return
		}
		log.Printf("❌ Erreur lecture note: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture note"})
		return
	}
	c.JSON(http.StatusOK, rating)
}

// POST /ratings/spot/:spotId — une note par (utilisateur, spot) :
// création → 201, remplacement → 200. La moyenne du spot est recalculée
// dans la même transaction que l'écriture.
func (h *RatingHandler) Save(c *gin.Context) {
	spotID := c.Param("spotId")
	userID := currentUserID(c)

	var input models.RatingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}

	if _, err := h.spots.GetByID(spotID); err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Spot introuvable"})
			return
		}
		log.Printf("❌ Erreur lecture spot %s: %v", spotID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur enregistrement note"})
		return
	}

	rating, created, err := h.ratings.Save(spotID, userID, input)
	if err != nil {
		log.Printf("❌ Erreur enregistrement note: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur enregistrement note"})
		return
	}

	// La moyenne du spot a changé : l'entrée en cache est périmée
	h.cache.Invalidate(c.Request.Context(), spotID)

	log.Printf("⭐ Note enregistrée: spot %s, utilisateur %s (%d/5)", spotID, userID, rating.Score)

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, rating)
}

// DELETE /ratings/spot/:spotId — supprime la note de l'utilisateur
// courant et recalcule la moyenne (0 s'il ne reste rien).
func (h *RatingHandler) Delete(c *gin.Context) {
	spotID := c.Param("spotId")

	if err := h.ratings.Delete(spotID, currentUserID(c)); err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Note introuvable"})
			return
		}
		log.Printf("❌ Erreur suppression note: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression note"})
		return
	}

	h.cache.Invalidate(c.Request.Context(), spotID)

	c.JSON(http.StatusOK, gin.H{"message": "Note supprimée avec succès"})
}
