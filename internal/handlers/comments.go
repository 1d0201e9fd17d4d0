package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tourism_backend/internal/models"
)

// CommentStore : commentaires MongoDB, avec réponses imbriquées.
type CommentStore interface {
	ListBySpot(ctx context.Context, spotID string) ([]models.Comment, error)
	GetByID(ctx context.Context, id string) (*models.Comment, error)
	Create(ctx context.Context, spotID, userID string, in models.CommentInput) (*models.Comment, error)
	UpdateText(ctx context.Context, id, text string) (*models.Comment, error)
	Delete(ctx context.Context, id string) error
	AddReply(ctx context.Context, id, userID, text string) (*models.Comment, error)
}

type CommentHandler struct {
	comments CommentStore
}

func NewCommentHandler(comments CommentStore) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// GET /comments/spot/:spotId
func (h *CommentHandler) ListBySpot(c *gin.Context) {
	comments, err := h.comments.ListBySpot(c.Request.Context(), c.Param("spotId"))
	if err != nil {
		log.Printf("❌ Erreur lecture commentaires: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture commentaires"})
		return
	}
	c.JSON(http.StatusOK, comments)
}

// POST /comments/spot/:spotId (authentifié)
func (h *CommentHandler) Create(c *gin.Context) {
	var input models.CommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}

	comment, err := h.comments.Create(c.Request.Context(), c.Param("spotId"), currentUserID(c), input)
	if err != nil {
		log.Printf("❌ Erreur création commentaire: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création commentaire"})
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// checkCommentOwner charge le commentaire et vérifie auteur ou admin.
func (h *CommentHandler) checkCommentOwner(c *gin.Context, id string) *models.Comment {
	comment, err := h.comments.GetByID(c.Request.Context(), id)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Commentaire introuvable"})
			return nil
		}
		log.Printf("❌ Erreur lecture commentaire: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture commentaire"})
		return nil
	}

	if comment.UserID != currentUserID(c) && !isAdmin(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Vous ne pouvez modifier que vos propres commentaires"})
		return nil
	}
	return comment
}

// PUT /comments/:commentId (auteur ou admin)
func (h *CommentHandler) Update(c *gin.Context) {
	id := c.Param("commentId")

	var input struct {
		Text string `json:"text" binding:"required,min=1,max=500"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}

	if h.checkCommentOwner(c, id) == nil {
		return
	}

	comment, err := h.comments.UpdateText(c.Request.Context(), id, input.Text)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Commentaire introuvable"})
			return
		}
		log.Printf("❌ Erreur mise à jour commentaire: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour commentaire"})
		return
	}
	c.JSON(http.StatusOK, comment)
}

// DELETE /comments/:commentId (auteur ou admin)
func (h *CommentHandler) Delete(c *gin.Context) {
	id := c.Param("commentId")

	if h.checkCommentOwner(c, id) == nil {
		return
	}

	if err := h.comments.Delete(c.Request.Context(), id); err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Commentaire introuvable"})
			return
		}
		log.Printf("❌ Erreur suppression commentaire: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression commentaire"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Commentaire supprimé avec succès"})
}

// POST /comments/:commentId/reply (authentifié) — toute personne
// connectée peut répondre, pas seulement l'auteur.
func (h *CommentHandler) Reply(c *gin.Context) {
	id := c.Param("commentId")

	var input models.ReplyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}

	comment, err := h.comments.AddReply(c.Request.Context(), id, currentUserID(c), input.Text)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Commentaire introuvable"})
			return
		}
		log.Printf("❌ Erreur ajout réponse: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur ajout réponse"})
		return
	}
	c.JSON(http.StatusCreated, comment)
}
