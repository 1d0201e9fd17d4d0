// Package cache : cache-aside Redis devant les lectures unitaires de
// spots. Le cache est une copie dérivée et éphémère : toute opération
// est best-effort, PostgreSQL reste la source de vérité.
package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"tourism_backend/internal/models"
)

// SpotCacheTTL : durée de vie d'un spot en cache (1 heure).
const SpotCacheTTL = 1 * time.Hour

type SpotCache struct {
	rdb *redis.Client
}

func NewSpotCache(rdb *redis.Client) *SpotCache {
	return &SpotCache{rdb: rdb}
}

func spotKey(id string) string {
	return "spot:" + id
}

// Get retourne le spot en cache, ou (nil, false) sur absence comme sur
// panne Redis : l'appelant retombe toujours sur PostgreSQL.
func (c *SpotCache) Get(ctx context.Context, id string) (*models.SpotWithWeather, bool) {
	if c.rdb == nil {
		return nil, false
	}

	data, err := c.rdb.Get(ctx, spotKey(id)).Result()
	if err != nil {
		return nil, false
	}

	var spot models.SpotWithWeather
	if err := json.Unmarshal([]byte(data), &spot); err != nil {
		// Entrée corrompue : on la purge et on repart de la base
		c.rdb.Del(ctx, spotKey(id))
		return nil, false
	}
	return &spot, true
}

// Set écrit le spot décoré pour 1 heure. Un échec est journalisé, jamais
// remonté à la requête.
func (c *SpotCache) Set(ctx context.Context, spot *models.SpotWithWeather) {
	if c.rdb == nil {
		return
	}

	data, err := json.Marshal(spot)
	if err != nil {
		log.Printf("⚠️ Erreur sérialisation cache spot %s: %v", spot.ID, err)
		return
	}
	if err := c.rdb.Set(ctx, spotKey(spot.ID), data, SpotCacheTTL).Err(); err != nil {
		log.Printf("⚠️ Erreur écriture cache spot %s: %v", spot.ID, err)
	}
}

// Invalidate supprime l'entrée, dans la même requête que la mutation.
// L'échec est journalisé sans faire échouer la requête.
func (c *SpotCache) Invalidate(ctx context.Context, id string) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, spotKey(id)).Err(); err != nil {
		log.Printf("⚠️ Erreur invalidation cache spot %s: %v", id, err)
	}
}
