package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tourism_backend/internal/models"
)

// LodgingStore : hébergements d'un spot.
type LodgingStore interface {
	ListBySpot(spotID string) ([]models.Lodging, error)
	GetByID(id string) (*models.Lodging, error)
	Create(in models.LodgingInput) (*models.Lodging, error)
	Update(id string, in models.LodgingInput) (*models.Lodging, error)
	Delete(id string) error
}

type LodgingHandler struct {
	lodgings LodgingStore
	spots    spotGetter
}

func NewLodgingHandler(lodgings LodgingStore, spots spotGetter) *LodgingHandler {
	return &LodgingHandler{lodgings: lodgings, spots: spots}
}

// GET /lodgings/spot/:spotId
func (h *LodgingHandler) ListBySpot(c *gin.Context) {
	lodgings, err := h.lodgings.ListBySpot(c.Param("spotId"))
	if err != nil {
		log.Printf("❌ Erreur liste hébergements: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture hébergements"})
		return
	}
	c.JSON(http.StatusOK, lodgings)
}

// GET /lodgings/:id
func (h *LodgingHandler) Get(c *gin.Context) {
	lodging, err := h.lodgings.GetByID(c.Param("id"))
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Hébergement introuvable"})
			return
		}
		log.Printf("❌ Erreur lecture hébergement: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture hébergement"})
		return
	}
	c.JSON(http.StatusOK, lodging)
}

// POST /lodgings (authentifié)
func (h *LodgingHandler) Create(c *gin.Context) {
	var input models.LodgingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}

	if _, err := h.spots.GetByID(input.SpotID); err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Spot introuvable"})
			return
		}
		log.Printf("❌ Erreur lecture spot %s: %v", input.SpotID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création hébergement"})
		return
	}

	lodging, err := h.lodgings.Create(input)
	if err != nil {
		log.Printf("❌ Erreur création hébergement: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création hébergement"})
		return
	}
	c.JSON(http.StatusCreated, lodging)
}

// canEditLodging : propriétaire du spot parent ou admin.
func (h *LodgingHandler) canEditLodging(c *gin.Context, lodging *models.Lodging) (bool, error) {
	if isAdmin(c) {
		return true, nil
	}
	spot, err := h.spots.GetByID(lodging.SpotID)
	if err != nil {
		return false, err
	}
	return spot.CreatedBy == currentUserID(c), nil
}

// PUT /lodgings/:id (propriétaire du spot parent ou admin)
func (h *LodgingHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var input models.LodgingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}

	existing, err := h.lodgings.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Hébergement introuvable"})
			return
		}
		log.Printf("❌ Erreur lecture hébergement: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour hébergement"})
		return
	}

	allowed, err := h.canEditLodging(c, existing)
	if err != nil {
		log.Printf("❌ Erreur vérification droits hébergement: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour hébergement"})
		return
	}
	if !allowed {
		c.JSON(http.StatusForbidden, gin.H{"error": "Vous ne pouvez modifier que les hébergements de vos spots"})
		return
	}

	lodging, err := h.lodgings.Update(id, input)
	if err != nil {
		log.Printf("❌ Erreur mise à jour hébergement: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour hébergement"})
		return
	}
	c.JSON(http.StatusOK, lodging)
}

// DELETE /lodgings/:id (propriétaire du spot parent ou admin)
func (h *LodgingHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	existing, err := h.lodgings.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Hébergement introuvable"})
			return
		}
		log.Printf("❌ Erreur lecture hébergement: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression hébergement"})
		return
	}

	allowed, err := h.canEditLodging(c, existing)
	if err != nil {
		log.Printf("❌ Erreur vérification droits hébergement: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression hébergement"})
		return
	}
	if !allowed {
		c.JSON(http.StatusForbidden, gin.H{"error": "Vous ne pouvez supprimer que les hébergements de vos spots"})
		return
	}

	if err := h.lodgings.Delete(id); err != nil {
		log.Printf("❌ Erreur suppression hébergement: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression hébergement"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Hébergement supprimé avec succès"})
}
