package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tourism_backend/internal/models"
)

// PhotoRepository : collection MongoDB "photos" (métadonnées uniquement,
// les fichiers vivent dans MinIO).
type PhotoRepository struct {
	col *mongo.Collection
}

func NewPhotoRepository(db *mongo.Database) *PhotoRepository {
	return &PhotoRepository{col: db.Collection("photos")}
}

func (r *PhotoRepository) ListBySpot(ctx context.Context, spotID string) ([]models.Photo, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{"spotId": spotID}, opts)
	if err != nil {
		return nil, fmt.Errorf("erreur lecture photos: %w", err)
	}
	defer cursor.Close(ctx)

	photos := []models.Photo{}
	if err := cursor.All(ctx, &photos); err != nil {
		return nil, fmt.Errorf("erreur décodage photos: %w", err)
	}
	return photos, nil
}

// CountBySpot sert à plafonner à 10 photos par spot.
func (r *PhotoRepository) CountBySpot(ctx context.Context, spotID string) (int64, error) {
	count, err := r.col.CountDocuments(ctx, bson.M{"spotId": spotID})
	if err != nil {
		return 0, fmt.Errorf("erreur comptage photos: %w", err)
	}
	return count, nil
}

func (r *PhotoRepository) GetByID(ctx context.Context, id string) (*models.Photo, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var photo models.Photo
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&photo)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erreur lecture photo: %w", err)
	}
	return &photo, nil
}

func (r *PhotoRepository) Create(ctx context.Context, photo models.Photo) (*models.Photo, error) {
	res, err := r.col.InsertOne(ctx, photo)
	if err != nil {
		return nil, fmt.Errorf("erreur insertion photo: %w", err)
	}
	photo.ID = res.InsertedID.(primitive.ObjectID)
	return &photo, nil
}

func (r *PhotoRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("erreur suppression photo: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
