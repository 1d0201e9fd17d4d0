package repository

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"tourism_backend/internal/models"
)

type FavoriteRepository struct {
	db *sqlx.DB
}

func NewFavoriteRepository(db *sqlx.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// ListByUser retourne les favoris de l'utilisateur avec le spot joint,
// plus récents d'abord.
func (r *FavoriteRepository) ListByUser(userID string) ([]models.FavoriteWithSpot, error) {
	favorites := []models.FavoriteWithSpot{}
	err := r.db.Select(&favorites, `
		SELECT f.id, f.spot_id, f.user_id, f.created_at,
		       s.id             AS "spot.id",
		       s.name           AS "spot.name",
		       s.description    AS "spot.description",
		       s.city           AS "spot.city",
		       s.state          AS "spot.state",
		       s.country        AS "spot.country",
		       s.lat            AS "spot.lat",
		       s.lng            AS "spot.lng",
		       s.address        AS "spot.address",
		       s.created_by     AS "spot.created_by",
		       s.created_at     AS "spot.created_at",
		       s.average_rating AS "spot.average_rating"
		FROM favorites f
		JOIN tourist_spots s ON s.id = f.spot_id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("erreur liste favoris: %w", err)
	}
	return favorites, nil
}

// Create ajoute le favori ; couple (utilisateur, spot) déjà présent →
// ErrDuplicate (contrainte UNIQUE).
func (r *FavoriteRepository) Create(spotID, userID string) (*models.Favorite, error) {
	var favorite models.Favorite
	err := r.db.Get(&favorite, `
		INSERT INTO favorites (spot_id, user_id)
		VALUES ($1, $2)
		RETURNING *`, spotID, userID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("erreur ajout favori: %w", err)
	}
	return &favorite, nil
}

func (r *FavoriteRepository) Delete(spotID, userID string) error {
	res, err := r.db.Exec(
		"DELETE FROM favorites WHERE spot_id=$1 AND user_id=$2", spotID, userID)
	if err != nil {
		return fmt.Errorf("erreur suppression favori: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
