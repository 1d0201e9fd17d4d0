package handlers

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"github.com/gin-gonic/gin"

	"tourism_backend/internal/middleware"
	"tourism_backend/internal/models"
)

// errAny simule une défaillance d'infrastructure quelconque.
var errAny = errors.New("panne simulée")

// Doublures partagées par les tests de handlers : elles couvrent les
// petites interfaces consommées par chaque fichier, sans base réelle.

type fakeSpotStore struct {
	spots   map[string]models.TouristSpot
	listErr error
	created []models.SpotInput
	deleted []string
}

func newFakeSpotStore(spots ...models.TouristSpot) *fakeSpotStore {
	s := &fakeSpotStore{spots: map[string]models.TouristSpot{}}
	for _, spot := range spots {
		s.spots[spot.ID] = spot
	}
	return s
}

func (s *fakeSpotStore) List(f models.SpotFilter) ([]models.TouristSpot, int, error) {
	if s.listErr != nil {
		return nil, 0, s.listErr
	}
	all := []models.TouristSpot{}
	for _, spot := range s.spots {
		all = append(all, spot)
	}
	return all, len(all), nil
}

func (s *fakeSpotStore) ListAll() ([]models.TouristSpot, error) {
	all, _, err := s.List(models.SpotFilter{})
	return all, err
}

func (s *fakeSpotStore) GetByID(id string) (*models.TouristSpot, error) {
	spot, ok := s.spots[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &spot, nil
}

func (s *fakeSpotStore) Create(in models.SpotInput, createdBy string) (*models.TouristSpot, error) {
	s.created = append(s.created, in)
	spot := models.TouristSpot{
		ID: "spot-" + in.Name, Name: in.Name, Description: in.Description,
		City: in.City, State: in.State, Country: in.Country,
		Lat: in.Lat, Lng: in.Lng, Address: in.Address, CreatedBy: createdBy,
	}
	s.spots[spot.ID] = spot
	return &spot, nil
}

func (s *fakeSpotStore) Update(id string, in models.SpotInput) (*models.TouristSpot, error) {
	spot, ok := s.spots[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	spot.Name, spot.Description = in.Name, in.Description
	spot.City, spot.State, spot.Country = in.City, in.State, in.Country
	spot.Lat, spot.Lng, spot.Address = in.Lat, in.Lng, in.Address
	s.spots[id] = spot
	return &spot, nil
}

func (s *fakeSpotStore) Delete(id string) error {
	if _, ok := s.spots[id]; !ok {
		return sql.ErrNoRows
	}
	delete(s.spots, id)
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *fakeSpotStore) SearchLike(q string) ([]models.TouristSpot, error) {
	return s.ListAll()
}

type fakeCache struct {
	mu          sync.Mutex
	entries     map[string]*models.SpotWithWeather
	invalidated []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]*models.SpotWithWeather{}}
}

func (c *fakeCache) Get(ctx context.Context, id string) (*models.SpotWithWeather, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[id]
	return e, ok
}

func (c *fakeCache) Set(ctx context.Context, spot *models.SpotWithWeather) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[spot.ID] = spot
}

func (c *fakeCache) Invalidate(ctx context.Context, id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, id)
	c.invalidated = append(c.invalidated, id)
}

type fakeWeather struct {
	weather *models.Weather
}

func (w *fakeWeather) Get(ctx context.Context, lat, lng float64) *models.Weather {
	return w.weather
}

type fakeSearch struct {
	mu      sync.Mutex
	indexed []string
	removed []string
	results []models.TouristSpot
	err     error
}

func (s *fakeSearch) IndexSpot(spot models.TouristSpot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.indexed = append(s.indexed, spot.ID)
}

func (s *fakeSearch) DeleteSpot(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removed = append(s.removed, id)
}

func (s *fakeSearch) Search(ctx context.Context, q string) ([]models.TouristSpot, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.results, nil
}

// asUser simule AuthRequired : pose user_id et role dans le contexte.
func asUser(userID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.CtxUserID, userID)
		c.Set(middleware.CtxRole, role)
		c.Next()
	}
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}
