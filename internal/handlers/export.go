package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tourism_backend/internal/models"
	"tourism_backend/internal/transfer"
)

// SpotExporter : lecture de la table entière pour l'export.
type SpotExporter interface {
	ListAll() ([]models.TouristSpot, error)
}

type ExportHandler struct {
	spots SpotExporter
}

func NewExportHandler(spots SpotExporter) *ExportHandler {
	return &ExportHandler{spots: spots}
}

// GET /export/spots?format=json|csv|xml — sérialise toute la table en
// une passe, sans pagination.
func (h *ExportHandler) Spots(c *gin.Context) {
	format := c.DefaultQuery("format", transfer.FormatJSON)

	mime, filename, err := transfer.ContentType(format)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Format invalide. Utilisez json, csv ou xml"})
		return
	}

	spots, err := h.spots.ListAll()
	if err != nil {
		log.Printf("❌ Erreur export spots: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur export spots"})
		return
	}

	records := make([]transfer.Record, 0, len(spots))
	for _, s := range spots {
		records = append(records, transfer.FromSpot(s))
	}

	body, err := transfer.Encode(format, records)
	if err != nil {
		log.Printf("❌ Erreur sérialisation export: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur export spots"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, mime, body)
}
