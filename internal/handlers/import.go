package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tourism_backend/internal/models"
	"tourism_backend/internal/transfer"
)

// SpotImporter : insertion unitaire d'un spot importé.
type SpotImporter interface {
	Create(in models.SpotInput, createdBy string) (*models.TouristSpot, error)
}

type ImportHandler struct {
	spots SpotImporter
}

func NewImportHandler(spots SpotImporter) *ImportHandler {
	return &ImportHandler{spots: spots}
}

type importError struct {
	Spot  string `json:"spot"`
	Error string `json:"error"`
}

type importResults struct {
	Successful int           `json:"successful"`
	Failed     int           `json:"failed"`
	Errors     []importError `json:"errors"`
}

// POST /import/spots (admin) — multipart "file" + champ "format".
// Chaque enregistrement est validé et inséré indépendamment : un échec
// n'interrompt jamais le lot et aucune insertion n'est annulée après
// coup. Les spots créés appartiennent à l'admin importateur.
func (h *ImportHandler) Spots(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Aucun fichier reçu"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("❌ Erreur ouverture fichier import: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur import spots"})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		log.Printf("❌ Erreur lecture fichier import: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur import spots"})
		return
	}

	format := c.DefaultPostForm("format", transfer.FormatJSON)
	rawRecords, err := transfer.Decode(format, content)
	if err != nil {
		if errors.Is(err, transfer.ErrUnknownFormat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Format invalide. Utilisez json, csv ou xml"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fichier inexploitable", "details": err.Error()})
		return
	}

	userID := currentUserID(c)
	results := importResults{Errors: []importError{}}

	for _, raw := range rawRecords {
		name := raw.Name
		if name == "" {
			name = "Unknown"
		}

		input, err := transfer.Validate(raw)
		if err != nil {
			results.Failed++
			results.Errors = append(results.Errors, importError{Spot: name, Error: err.Error()})
			continue
		}

		if _, err := h.spots.Create(input, userID); err != nil {
			log.Printf("⚠️ Erreur insertion spot importé %q: %v", name, err)
			results.Failed++
			results.Errors = append(results.Errors, importError{Spot: name, Error: "insertion impossible"})
			continue
		}
		results.Successful++
	}

	log.Printf("📥 Import terminé: %d réussis, %d échoués", results.Successful, results.Failed)

	c.JSON(http.StatusOK, gin.H{
		"message": "Import terminé",
		"results": results,
	})
}
