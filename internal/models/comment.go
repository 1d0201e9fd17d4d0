package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CommentMetadata : champs libres du client, validés à la frontière
// (jamais de payload non typé côté stockage).
type CommentMetadata struct {
	Device   string `bson:"device,omitempty" json:"device,omitempty" binding:"omitempty,max=100"`
	Language string `bson:"language,omitempty" json:"language,omitempty" binding:"omitempty,min=2,max=10"`
}

type CommentReply struct {
	UserID    string    `bson:"userId" json:"userId"`
	Text      string    `bson:"text" json:"text"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Comment vit dans la collection MongoDB "comments". spotId est l'uuid du
// spot sous forme de chaîne : pas de clé étrangère, pas de cascade.
type Comment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	SpotID    string             `bson:"spotId" json:"spotId"`
	UserID    string             `bson:"userId" json:"userId"`
	Text      string             `bson:"text" json:"text"`
	Metadata  CommentMetadata    `bson:"metadata,omitempty" json:"metadata,omitempty"`
	Replies   []CommentReply     `bson:"replies" json:"replies"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt *time.Time         `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type CommentInput struct {
	Text     string           `json:"text" binding:"required,min=1,max=500"`
	Metadata *CommentMetadata `json:"metadata" binding:"omitempty"`
}

type ReplyInput struct {
	Text string `json:"text" binding:"required,min=1,max=500"`
}
