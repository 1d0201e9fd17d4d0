package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tourism_backend/internal/models"
	"tourism_backend/internal/repository"
)

// FavoriteStore : favoris d'un utilisateur.
type FavoriteStore interface {
	ListByUser(userID string) ([]models.FavoriteWithSpot, error)
	Create(spotID, userID string) (*models.Favorite, error)
	Delete(spotID, userID string) error
}

type FavoriteHandler struct {
	favorites FavoriteStore
	spots     spotGetter
}

func NewFavoriteHandler(favorites FavoriteStore, spots spotGetter) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites, spots: spots}
}

// GET /favorites (authentifié)
func (h *FavoriteHandler) List(c *gin.Context) {
	favorites, err := h.favorites.ListByUser(currentUserID(c))
	if err != nil {
		log.Printf("❌ Erreur liste favoris: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture favoris"})
		return
	}
	c.JSON(http.StatusOK, favorites)
}

// POST /favorites/:spotId — un favori par (utilisateur, spot), sinon 409.
func (h *FavoriteHandler) Create(c *gin.Context) {
	spotID := c.Param("spotId")

	if _, err := h.spots.GetByID(spotID); err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Spot introuvable"})
			return
		}
		log.Printf("❌ Erreur lecture spot %s: %v", spotID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur ajout favori"})
		return
	}

	favorite, err := h.favorites.Create(spotID, currentUserID(c))
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Ce spot est déjà dans vos favoris"})
			return
		}
		log.Printf("❌ Erreur ajout favori: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur ajout favori"})
		return
	}
	c.JSON(http.StatusCreated, favorite)
}

// DELETE /favorites/:spotId
func (h *FavoriteHandler) Delete(c *gin.Context) {
	if err := h.favorites.Delete(c.Param("spotId"), currentUserID(c)); err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Favori introuvable"})
			return
		}
		log.Printf("❌ Erreur suppression favori: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression favori"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Favori supprimé avec succès"})
}
