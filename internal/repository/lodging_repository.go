package repository

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"tourism_backend/internal/models"
)

type LodgingRepository struct {
	db *sqlx.DB
}

func NewLodgingRepository(db *sqlx.DB) *LodgingRepository {
	return &LodgingRepository{db: db}
}

func (r *LodgingRepository) ListBySpot(spotID string) ([]models.Lodging, error) {
	lodgings := []models.Lodging{}
	err := r.db.Select(&lodgings,
		"SELECT * FROM lodgings WHERE spot_id=$1 ORDER BY name", spotID)
	if err != nil {
		return nil, fmt.Errorf("erreur liste hébergements: %w", err)
	}
	return lodgings, nil
}

func (r *LodgingRepository) GetByID(id string) (*models.Lodging, error) {
	var lodging models.Lodging
	if err := r.db.Get(&lodging, "SELECT * FROM lodgings WHERE id=$1", id); err != nil {
		return nil, err
	}
	return &lodging, nil
}

func (r *LodgingRepository) Create(in models.LodgingInput) (*models.Lodging, error) {
	var lodging models.Lodging
	err := r.db.Get(&lodging, `
		INSERT INTO lodgings (spot_id, name, address, phone, avg_price, type, booking_link)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING *`,
		in.SpotID, in.Name, in.Address, in.Phone, in.AvgPrice, in.Type, in.BookingLink)
	if err != nil {
		return nil, fmt.Errorf("erreur création hébergement: %w", err)
	}
	return &lodging, nil
}

func (r *LodgingRepository) Update(id string, in models.LodgingInput) (*models.Lodging, error) {
	var lodging models.Lodging
	err := r.db.Get(&lodging, `
		UPDATE lodgings
		SET name=$1, address=$2, phone=$3, avg_price=$4, type=$5, booking_link=$6
		WHERE id=$7
		RETURNING *`,
		in.Name, in.Address, in.Phone, in.AvgPrice, in.Type, in.BookingLink, id)
	if err != nil {
		return nil, err
	}
	return &lodging, nil
}

func (r *LodgingRepository) Delete(id string) error {
	res, err := r.db.Exec("DELETE FROM lodgings WHERE id=$1", id)
	if err != nil {
		return fmt.Errorf("erreur suppression hébergement: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
