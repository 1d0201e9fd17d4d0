package models

import "time"

type Favorite struct {
	ID        string    `db:"id" json:"id"`
	SpotID    string    `db:"spot_id" json:"spotId"`
	UserID    string    `db:"user_id" json:"userId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// FavoriteWithSpot joint le spot complet au favori pour GET /favorites.
type FavoriteWithSpot struct {
	Favorite
	Spot TouristSpot `db:"spot" json:"spot"`
}
