package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"tourism_backend/internal/models"
)

// SpotIndex : indexation et recherche plein texte des spots dans
// Elasticsearch. Tout est best-effort : l'index est dérivé de
// PostgreSQL, le handler retombe sur SQL en cas d'échec.
type SpotIndex struct {
	es    *elasticsearch.Client
	index string
}

func NewSpotIndex(es *elasticsearch.Client) *SpotIndex {
	return &SpotIndex{es: es, index: "tourist_spots"}
}

// IndexSpot indexe (ou réindexe) un spot. Appelé en goroutine après
// chaque création/mise à jour.
func (s *SpotIndex) IndexSpot(spot models.TouristSpot) {
	if s == nil || s.es == nil {
		return
	}

	data, _ := json.Marshal(spot)
	req := esapi.IndexRequest{
		Index:      s.index,
		DocumentID: spot.ID,
		Body:       bytes.NewReader(data),
	}

	res, err := req.Do(context.Background(), s.es)
	if err != nil {
		log.Printf("❌ Erreur envoi Elastic: %v", err)
		return
	}
	defer res.Body.Close()

	if res.IsError() {
		log.Printf("⚠️ Elastic a renvoyé une erreur pour %s: %s", spot.Name, res.String())
	}
}

// DeleteSpot retire le spot de l'index après suppression en base.
func (s *SpotIndex) DeleteSpot(id string) {
	if s == nil || s.es == nil {
		return
	}

	req := esapi.DeleteRequest{Index: s.index, DocumentID: id}
	res, err := req.Do(context.Background(), s.es)
	if err != nil {
		log.Printf("❌ Erreur suppression Elastic: %v", err)
		return
	}
	res.Body.Close()
}

// Search : multi_match sur nom, description, ville et pays.
func (s *SpotIndex) Search(ctx context.Context, query string) ([]models.TouristSpot, error) {
	if s == nil || s.es == nil {
		return nil, errors.New("client Elasticsearch non initialisé")
	}

	var buf bytes.Buffer
	q := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  query,
				"fields": []string{"name", "description", "city", "country"},
			},
		},
	}
	if err := json.NewEncoder(&buf).Encode(q); err != nil {
		return nil, fmt.Errorf("erreur encodage requête: %w", err)
	}

	req := esapi.SearchRequest{
		Index: []string{s.index},
		Body:  &buf,
	}
	res, err := req.Do(ctx, s.es)
	if err != nil {
		return nil, fmt.Errorf("erreur requête Elastic: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("elasticsearch: %s", res.Status())
	}

	var r struct {
		Hits struct {
			Hits []struct {
				Source models.TouristSpot `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("erreur décodage JSON: %w", err)
	}

	spots := make([]models.TouristSpot, 0, len(r.Hits.Hits))
	for _, hit := range r.Hits.Hits {
		spots = append(spots, hit.Source)
	}
	return spots, nil
}
