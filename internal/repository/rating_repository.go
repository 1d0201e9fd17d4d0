package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"tourism_backend/internal/models"
)

// RatingRepository : notes des spots et recalcul de la moyenne.
//
// Chaque mutation et le recalcul de average_rating s'exécutent dans UNE
// transaction, avec un UPDATE à sous-requête AVG : deux votes concurrents
// sur le même spot ne peuvent plus se perdre mutuellement.
type RatingRepository struct {
	db *sqlx.DB
}

func NewRatingRepository(db *sqlx.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

// ListBySpot retourne les notes d'un spot, plus récentes d'abord.
func (r *RatingRepository) ListBySpot(spotID string) ([]models.Rating, error) {
	ratings := []models.Rating{}
	err := r.db.Select(&ratings,
		"SELECT * FROM ratings WHERE spot_id=$1 ORDER BY created_at DESC", spotID)
	if err != nil {
		return nil, fmt.Errorf("erreur lecture notes: %w", err)
	}
	return ratings, nil
}

// GetByUserAndSpot retourne sql.ErrNoRows quand l'utilisateur n'a pas
// encore noté ce spot.
func (r *RatingRepository) GetByUserAndSpot(userID, spotID string) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.Get(&rating,
		"SELECT * FROM ratings WHERE user_id=$1 AND spot_id=$2", userID, spotID)
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// recomputeAverage persiste la moyenne arithmétique courante du spot,
// 0 (numérique) quand il ne reste aucune note.
func recomputeAverage(tx *sqlx.Tx, spotID string) error {
	_, err := tx.Exec(`
		UPDATE tourist_spots
		SET average_rating = COALESCE((SELECT AVG(score) FROM ratings WHERE spot_id=$1), 0)
		WHERE id=$1`, spotID)
	return err
}

// Save crée la note ou met à jour celle existante du couple
// (utilisateur, spot), puis recalcule la moyenne. created indique si une
// ligne a été créée (201) ou remplacée (200).
func (r *RatingRepository) Save(spotID, userID string, in models.RatingInput) (*models.Rating, bool, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return nil, false, fmt.Errorf("erreur transaction note: %w", err)
	}
	defer tx.Rollback()

	var existingID string
	err = tx.Get(&existingID,
		"SELECT id FROM ratings WHERE user_id=$1 AND spot_id=$2", userID, spotID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, false, fmt.Errorf("erreur recherche note: %w", err)
	}

	var rating models.Rating
	created := errors.Is(err, sql.ErrNoRows)

	if created {
		err = tx.Get(&rating, `
			INSERT INTO ratings (spot_id, user_id, score, summary_comment)
			VALUES ($1, $2, $3, $4)
			RETURNING *`, spotID, userID, in.Score, in.SummaryComment)
	} else {
		err = tx.Get(&rating, `
			UPDATE ratings SET score=$1, summary_comment=$2
			WHERE id=$3
			RETURNING *`, in.Score, in.SummaryComment, existingID)
	}
	if err != nil {
		return nil, false, fmt.Errorf("erreur enregistrement note: %w", err)
	}

	if err := recomputeAverage(tx, spotID); err != nil {
		return nil, false, fmt.Errorf("erreur recalcul moyenne: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("erreur commit note: %w", err)
	}
	return &rating, created, nil
}

// Delete supprime la note de l'utilisateur pour ce spot et recalcule la
// moyenne dans la même transaction. ErrNotFound si aucune note.
func (r *RatingRepository) Delete(spotID, userID string) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("erreur transaction note: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		"DELETE FROM ratings WHERE user_id=$1 AND spot_id=$2", userID, spotID)
	if err != nil {
		return fmt.Errorf("erreur suppression note: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}

	if err := recomputeAverage(tx, spotID); err != nil {
		return fmt.Errorf("erreur recalcul moyenne: %w", err)
	}
	return tx.Commit()
}
