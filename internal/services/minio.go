package services

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/minio/minio-go/v7"
)

// PhotoStorage : fichiers photo dans MinIO. Les métadonnées restent
// dans MongoDB, l'objet ne porte que le binaire.
type PhotoStorage struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

func NewPhotoStorage(client *minio.Client, bucket, publicURL string) *PhotoStorage {
	if publicURL == "" && client != nil {
		publicURL = "http://" + client.EndpointURL().Host
	}
	return &PhotoStorage{client: client, bucket: bucket, publicURL: publicURL}
}

// Upload pousse l'objet et retourne son URL publique.
func (s *PhotoStorage) Upload(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("stockage photos non configuré")
	}

	_, err := s.client.PutObject(ctx, s.bucket, objectKey, reader, size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("erreur upload MinIO: %w", err)
	}
	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, objectKey), nil
}

// Remove supprime l'objet. Best-effort : la suppression des métadonnées
// n'attend pas le stockage.
func (s *PhotoStorage) Remove(ctx context.Context, objectKey string) {
	if s.client == nil {
		return
	}
	if err := s.client.RemoveObject(ctx, s.bucket, objectKey, minio.RemoveObjectOptions{}); err != nil {
		log.Printf("⚠️ Erreur suppression fichier MinIO %s: %v", objectKey, err)
	}
}
