package handlers

import (
	"fmt"
	"log"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

type DirectionsHandler struct {
	spots spotGetter
}

func NewDirectionsHandler(spots spotGetter) *DirectionsHandler {
	return &DirectionsHandler{spots: spots}
}

// GET /directions/spot/:spotId — itinéraire textuel et liens carto
// dérivés de la fiche du spot.
func (h *DirectionsHandler) Get(c *gin.Context) {
	spotID := c.Param("spotId")

	spot, err := h.spots.GetByID(spotID)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Spot introuvable"})
			return
		}
		log.Printf("❌ Erreur lecture spot %s: %v", spotID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture itinéraire"})
		return
	}

	textDirections := []string{
		fmt.Sprintf("Rendez-vous à %s, situé à %s, %s, %s.", spot.Name, spot.City, spot.State, spot.Country),
		"Adresse : " + spot.Address,
		fmt.Sprintf("Coordonnées : %v, %v", spot.Lat, spot.Lng),
		"Utilisez un GPS ou une application de cartographie avec ces coordonnées.",
	}

	c.JSON(http.StatusOK, gin.H{
		"spotId": spot.ID,
		"name":   spot.Name,
		"coordinates": gin.H{
			"latitude":  spot.Lat,
			"longitude": spot.Lng,
		},
		"address":        spot.Address,
		"city":           spot.City,
		"state":          spot.State,
		"country":        spot.Country,
		"textDirections": textDirections,
		"googleMapsUrl":  fmt.Sprintf("https://www.google.com/maps/search/?api=1&query=%v,%v", spot.Lat, spot.Lng),
		"appleMapsUrl":   fmt.Sprintf("http://maps.apple.com/?ll=%v,%v&q=%s", spot.Lat, spot.Lng, url.QueryEscape(spot.Name)),
	})
}
