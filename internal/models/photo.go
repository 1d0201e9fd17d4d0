package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Photo : métadonnées d'une photo de spot dans la collection "photos".
// Le fichier lui-même vit dans MinIO sous ObjectKey.
type Photo struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	SpotID    string             `bson:"spotId" json:"spotId"`
	UserID    string             `bson:"userId" json:"userId"`
	Filename  string             `bson:"filename" json:"filename"`
	Title     string             `bson:"title" json:"title"`
	ObjectKey string             `bson:"objectKey" json:"objectKey"`
	URL       string             `bson:"url" json:"url"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
