package repository

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"tourism_backend/internal/models"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create insère l'utilisateur ; email déjà pris → ErrDuplicate.
func (r *UserRepository) Create(login, email, passwordHash string) (*models.User, error) {
	var user models.User
	err := r.db.Get(&user, `
		INSERT INTO users (login, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING *`, login, email, passwordHash, models.RoleUser)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("erreur création utilisateur: %w", err)
	}
	return &user, nil
}

// GetByEmail retourne sql.ErrNoRows si l'email est inconnu.
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Get(&user, "SELECT * FROM users WHERE email=$1", email); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.Get(&user, "SELECT * FROM users WHERE id=$1", id); err != nil {
		return nil, err
	}
	return &user, nil
}
