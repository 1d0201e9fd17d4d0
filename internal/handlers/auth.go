package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tourism_backend/internal/models"
	"tourism_backend/internal/repository"
	"tourism_backend/internal/utils"
)

// UserStore : accès utilisateurs requis par l'authentification.
type UserStore interface {
	Create(login, email, passwordHash string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
}

type AuthHandler struct {
	users  UserStore
	secret []byte
}

func NewAuthHandler(users UserStore, secret []byte) *AuthHandler {
	return &AuthHandler{users: users, secret: secret}
}

// POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var input models.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		log.Printf("❌ Erreur hash mot de passe: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création compte"})
		return
	}

	user, err := h.users.Create(input.Login, input.Email, hash)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Un compte avec cet email existe déjà"})
			return
		}
		log.Printf("❌ Erreur création utilisateur: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création compte"})
		return
	}

	token, err := utils.GenerateJWT(*user, h.secret)
	if err != nil {
		log.Printf("❌ Erreur génération JWT: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création compte"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input models.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}

	user, err := h.users.GetByEmail(input.Email)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Email ou mot de passe incorrect"})
			return
		}
		log.Printf("❌ Erreur lecture utilisateur: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion"})
		return
	}

	if !utils.VerifyPassword(input.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email ou mot de passe incorrect"})
		return
	}

	token, err := utils.GenerateJWT(*user, h.secret)
	if err != nil {
		log.Printf("❌ Erreur génération JWT: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// GET /auth/me (derrière AuthRequired)
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.users.GetByID(currentUserID(c))
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Utilisateur introuvable"})
			return
		}
		log.Printf("❌ Erreur lecture utilisateur: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture profil"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
