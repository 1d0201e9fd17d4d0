package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tourism_backend/internal/models"
)

// CommentRepository : collection MongoDB "comments".
type CommentRepository struct {
	col *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{col: db.Collection("comments")}
}

func (r *CommentRepository) ListBySpot(ctx context.Context, spotID string) ([]models.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{"spotId": spotID}, opts)
	if err != nil {
		return nil, fmt.Errorf("erreur lecture commentaires: %w", err)
	}
	defer cursor.Close(ctx)

	comments := []models.Comment{}
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, fmt.Errorf("erreur décodage commentaires: %w", err)
	}
	return comments, nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var comment models.Comment
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&comment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erreur lecture commentaire: %w", err)
	}
	return &comment, nil
}

func (r *CommentRepository) Create(ctx context.Context, spotID, userID string, in models.CommentInput) (*models.Comment, error) {
	comment := models.Comment{
		SpotID:    spotID,
		UserID:    userID,
		Text:      in.Text,
		Replies:   []models.CommentReply{},
		CreatedAt: time.Now().UTC(),
	}
	if in.Metadata != nil {
		comment.Metadata = *in.Metadata
	}

	res, err := r.col.InsertOne(ctx, comment)
	if err != nil {
		return nil, fmt.Errorf("erreur création commentaire: %w", err)
	}
	comment.ID = res.InsertedID.(primitive.ObjectID)
	return &comment, nil
}

// UpdateText remplace le texte et pose updatedAt, renvoie le document
// après mise à jour.
func (r *CommentRepository) UpdateText(ctx context.Context, id, text string) (*models.Comment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	now := time.Now().UTC()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var comment models.Comment
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"text": text, "updatedAt": now}},
		opts,
	).Decode(&comment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erreur mise à jour commentaire: %w", err)
	}
	return &comment, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("erreur suppression commentaire: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AddReply pousse la réponse en fin de séquence ordonnée "replies".
func (r *CommentRepository) AddReply(ctx context.Context, id, userID, text string) (*models.Comment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	reply := models.CommentReply{
		UserID:    userID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var comment models.Comment
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$push": bson.M{"replies": reply}},
		opts,
	).Decode(&comment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erreur ajout réponse: %w", err)
	}
	return &comment, nil
}
