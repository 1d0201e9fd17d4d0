package models

import "time"

// TouristSpot représente un lieu touristique stocké dans PostgreSQL.
// La moyenne des notes (average_rating) est recalculée par le repository
// des notes à chaque mutation, jamais par le client.
type TouristSpot struct {
	ID            string    `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	Description   string    `db:"description" json:"description"`
	City          string    `db:"city" json:"city"`
	State         string    `db:"state" json:"state"`
	Country       string    `db:"country" json:"country"`
	Lat           float64   `db:"lat" json:"lat"`
	Lng           float64   `db:"lng" json:"lng"`
	Address       string    `db:"address" json:"address"`
	CreatedBy     string    `db:"created_by" json:"createdBy"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
	AverageRating float64   `db:"average_rating" json:"averageRating"`
}

// SpotInput est le schéma de création/mise à jour d'un spot.
// id, created_by, created_at et average_rating sont toujours côté serveur.
type SpotInput struct {
	Name        string  `json:"name" binding:"required,min=1,max=255"`
	Description string  `json:"description" binding:"required,min=1,max=2000"`
	City        string  `json:"city" binding:"required,min=1,max=120"`
	State       string  `json:"state" binding:"required,min=1,max=120"`
	Country     string  `json:"country" binding:"required,min=1,max=120"`
	Address     string  `json:"address" binding:"required,min=1,max=255"`
	Lat         float64 `json:"lat" binding:"gte=-90,lte=90"`
	Lng         float64 `json:"lng" binding:"gte=-180,lte=180"`
}

// SpotFilter porte les paramètres de liste de GET /spots.
type SpotFilter struct {
	Page      int
	Limit     int
	City      string
	State     string
	Country   string
	MinRating float64
	HasMin    bool
	Search    string
	SortBy    string // name | rating | createdAt
	SortOrder string // asc | desc
}

// Pagination est renvoyée avec chaque liste paginée.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// SpotWithWeather est la forme mise en cache et renvoyée par GET /spots/:id.
// La météo est optionnelle : son absence ne bloque jamais la lecture.
type SpotWithWeather struct {
	TouristSpot
	Weather *Weather `json:"weather,omitempty"`
}
