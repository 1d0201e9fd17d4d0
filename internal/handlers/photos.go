package handlers

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tourism_backend/internal/models"
)

// Limites d'upload : 10 photos par spot, trois types d'image.
const MaxPhotosPerSpot = 10

var allowedPhotoTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// PhotoStore : métadonnées photo dans MongoDB.
type PhotoStore interface {
	ListBySpot(ctx context.Context, spotID string) ([]models.Photo, error)
	CountBySpot(ctx context.Context, spotID string) (int64, error)
	GetByID(ctx context.Context, id string) (*models.Photo, error)
	Create(ctx context.Context, photo models.Photo) (*models.Photo, error)
	Delete(ctx context.Context, id string) error
}

// PhotoFileStorage : fichiers dans MinIO. La suppression est
// best-effort, les métadonnées font foi.
type PhotoFileStorage interface {
	Upload(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) (string, error)
	Remove(ctx context.Context, objectKey string)
}

type PhotoHandler struct {
	photos  PhotoStore
	storage PhotoFileStorage
}

func NewPhotoHandler(photos PhotoStore, storage PhotoFileStorage) *PhotoHandler {
	return &PhotoHandler{photos: photos, storage: storage}
}

// GET /photos/spot/:spotId
func (h *PhotoHandler) ListBySpot(c *gin.Context) {
	photos, err := h.photos.ListBySpot(c.Request.Context(), c.Param("spotId"))
	if err != nil {
		log.Printf("❌ Erreur lecture photos: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture photos"})
		return
	}
	c.JSON(http.StatusOK, photos)
}

// POST /photos/spot/:spotId (authentifié) — multipart "photo" + champ
// "title" optionnel.
func (h *PhotoHandler) Upload(c *gin.Context) {
	spotID := c.Param("spotId")
	ctx := c.Request.Context()

	count, err := h.photos.CountBySpot(ctx, spotID)
	if err != nil {
		log.Printf("❌ Erreur comptage photos: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur upload photo"})
		return
	}
	if count >= MaxPhotosPerSpot {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Maximum %d photos par spot", MaxPhotosPerSpot)})
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Aucun fichier reçu"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedPhotoTypes[contentType] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Type de fichier invalide. Seuls JPEG, PNG et WebP sont acceptés"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("❌ Erreur ouverture fichier: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur upload photo"})
		return
	}
	defer file.Close()

	filename := uuid.New().String() + filepath.Ext(fileHeader.Filename)
	objectKey := fmt.Sprintf("spots/%s/%s", spotID, filename)

	url, err := h.storage.Upload(ctx, objectKey, file, fileHeader.Size, contentType)
	if err != nil {
		log.Printf("❌ Erreur upload MinIO: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur upload photo"})
		return
	}

	title := c.PostForm("title")
	if title == "" {
		title = fileHeader.Filename
	}

	photo, err := h.photos.Create(ctx, models.Photo{
		SpotID:    spotID,
		UserID:    currentUserID(c),
		Filename:  filename,
		Title:     title,
		ObjectKey: objectKey,
		URL:       url,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		// L'objet vient d'être poussé : on le retire pour ne pas laisser
		// un fichier sans métadonnées
		h.storage.Remove(ctx, objectKey)
		log.Printf("❌ Erreur insertion photo: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur upload photo"})
		return
	}

	c.JSON(http.StatusCreated, photo)
}

// DELETE /photos/:photoId (auteur ou admin)
func (h *PhotoHandler) Delete(c *gin.Context) {
	id := c.Param("photoId")
	ctx := c.Request.Context()

	photo, err := h.photos.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Photo introuvable"})
			return
		}
		log.Printf("❌ Erreur lecture photo: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression photo"})
		return
	}

	if photo.UserID != currentUserID(c) && !isAdmin(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Vous ne pouvez supprimer que vos propres photos"})
		return
	}

	// Fichier d'abord (best-effort), métadonnées ensuite
	h.storage.Remove(ctx, photo.ObjectKey)

	if err := h.photos.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Photo introuvable"})
			return
		}
		log.Printf("❌ Erreur suppression photo: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression photo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Photo supprimée avec succès"})
}
