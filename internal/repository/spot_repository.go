package repository

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"tourism_backend/internal/models"
)

// SpotRepository : accès typé aux spots touristiques dans PostgreSQL.
type SpotRepository struct {
	db *sqlx.DB
}

func NewSpotRepository(db *sqlx.DB) *SpotRepository {
	return &SpotRepository{db: db}
}

// buildSpotFilter construit la clause WHERE et les arguments pour la
// liste filtrée. Les placeholders sont en style '?' puis rebindés.
func buildSpotFilter(f models.SpotFilter) (string, []interface{}) {
	where := " WHERE 1=1"
	args := []interface{}{}

	if f.City != "" {
		where += " AND LOWER(city) LIKE ?"
		args = append(args, "%"+strings.ToLower(f.City)+"%")
	}
	if f.State != "" {
		where += " AND LOWER(state) LIKE ?"
		args = append(args, "%"+strings.ToLower(f.State)+"%")
	}
	if f.Country != "" {
		where += " AND LOWER(country) LIKE ?"
		args = append(args, "%"+strings.ToLower(f.Country)+"%")
	}
	if f.HasMin {
		where += " AND average_rating >= ?"
		args = append(args, f.MinRating)
	}
	if f.Search != "" {
		kw := "%" + strings.ToLower(f.Search) + "%"
		where += " AND (LOWER(name) LIKE ? OR LOWER(description) LIKE ?)"
		args = append(args, kw, kw)
	}
	return where, args
}

// spotOrderBy traduit sortBy/sortOrder en clause ORDER BY sûre.
// Tout champ inconnu retombe sur created_at.
func spotOrderBy(sortBy, sortOrder string) string {
	column := "created_at"
	switch sortBy {
	case "name":
		column = "name"
	case "rating":
		column = "average_rating"
	}
	direction := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		direction = "ASC"
	}
	return fmt.Sprintf(" ORDER BY %s %s", column, direction)
}

// List retourne une page de spots filtrés et le total correspondant.
func (r *SpotRepository) List(f models.SpotFilter) ([]models.TouristSpot, int, error) {
	where, args := buildSpotFilter(f)

	var total int
	countQuery := sqlx.Rebind(sqlx.DOLLAR, "SELECT COUNT(*) FROM tourist_spots"+where)
	if err := r.db.Get(&total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("erreur comptage spots: %w", err)
	}

	offset := (f.Page - 1) * f.Limit
	dataQuery := "SELECT * FROM tourist_spots" + where + spotOrderBy(f.SortBy, f.SortOrder) + " LIMIT ? OFFSET ?"
	dataQuery = sqlx.Rebind(sqlx.DOLLAR, dataQuery)

	spots := []models.TouristSpot{}
	if err := r.db.Select(&spots, dataQuery, append(args, f.Limit, offset)...); err != nil {
		return nil, 0, fmt.Errorf("erreur liste spots: %w", err)
	}
	return spots, total, nil
}

// ListAll retourne la table entière, pour l'export (pas de pagination).
func (r *SpotRepository) ListAll() ([]models.TouristSpot, error) {
	spots := []models.TouristSpot{}
	if err := r.db.Select(&spots, "SELECT * FROM tourist_spots ORDER BY created_at"); err != nil {
		return nil, fmt.Errorf("erreur export spots: %w", err)
	}
	return spots, nil
}

// GetByID retourne sql.ErrNoRows si le spot n'existe pas.
func (r *SpotRepository) GetByID(id string) (*models.TouristSpot, error) {
	var spot models.TouristSpot
	if err := r.db.Get(&spot, "SELECT * FROM tourist_spots WHERE id=$1", id); err != nil {
		return nil, err
	}
	return &spot, nil
}

func (r *SpotRepository) Create(in models.SpotInput, createdBy string) (*models.TouristSpot, error) {
	var spot models.TouristSpot
	err := r.db.Get(&spot, `
		INSERT INTO tourist_spots (name, description, city, state, country, lat, lng, address, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING *`,
		in.Name, in.Description, in.City, in.State, in.Country, in.Lat, in.Lng, in.Address, createdBy)
	if err != nil {
		return nil, fmt.Errorf("erreur création spot: %w", err)
	}
	return &spot, nil
}

func (r *SpotRepository) Update(id string, in models.SpotInput) (*models.TouristSpot, error) {
	var spot models.TouristSpot
	err := r.db.Get(&spot, `
		UPDATE tourist_spots
		SET name=$1, description=$2, city=$3, state=$4, country=$5, lat=$6, lng=$7, address=$8
		WHERE id=$9
		RETURNING *`,
		in.Name, in.Description, in.City, in.State, in.Country, in.Lat, in.Lng, in.Address, id)
	if err != nil {
		return nil, err
	}
	return &spot, nil
}

// Delete supprime le spot ; la cascade PostgreSQL emporte hébergements,
// notes et favoris. Les documents MongoDB restent orphelins (voulu).
func (r *SpotRepository) Delete(id string) error {
	res, err := r.db.Exec("DELETE FROM tourist_spots WHERE id=$1", id)
	if err != nil {
		return fmt.Errorf("erreur suppression spot: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// SearchLike : repli SQL de la recherche plein texte quand
// Elasticsearch est indisponible.
func (r *SpotRepository) SearchLike(q string) ([]models.TouristSpot, error) {
	kw := "%" + strings.ToLower(q) + "%"
	spots := []models.TouristSpot{}
	err := r.db.Select(&spots, `
		SELECT * FROM tourist_spots
		WHERE LOWER(name) LIKE $1 OR LOWER(description) LIKE $1
		   OR LOWER(city) LIKE $1 OR LOWER(country) LIKE $1
		ORDER BY average_rating DESC`, kw)
	if err != nil {
		return nil, fmt.Errorf("erreur recherche spots: %w", err)
	}
	return spots, nil
}
