package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"tourism_backend/internal/models"
	"tourism_backend/internal/repository"
)

type fakeFavoriteStore struct {
	favorites map[string]models.Favorite // clé "spotID/userID"
}

func newFakeFavoriteStore() *fakeFavoriteStore {
	return &fakeFavoriteStore{favorites: map[string]models.Favorite{}}
}

func (s *fakeFavoriteStore) ListByUser(userID string) ([]models.FavoriteWithSpot, error) {
	out := []models.FavoriteWithSpot{}
	for _, f := range s.favorites {
		if f.UserID == userID {
			out = append(out, models.FavoriteWithSpot{Favorite: f})
		}
	}
	return out, nil
}

func (s *fakeFavoriteStore) Create(spotID, userID string) (*models.Favorite, error) {
	k := spotID + "/" + userID
	if _, ok := s.favorites[k]; ok {
		return nil, repository.ErrDuplicate
	}
	f := models.Favorite{ID: "f-" + k, SpotID: spotID, UserID: userID}
	s.favorites[k] = f
	return &f, nil
}

func (s *fakeFavoriteStore) Delete(spotID, userID string) error {
	k := spotID + "/" + userID
	if _, ok := s.favorites[k]; !ok {
		return repository.ErrNotFound
	}
	delete(s.favorites, k)
	return nil
}

func favoriteRouter(store *fakeFavoriteStore, spots *fakeSpotStore) *gin.Engine {
	h := NewFavoriteHandler(store, spots)
	r := newTestRouter()
	r.GET("/favorites", asUser("u-1", models.RoleUser), h.List)
	r.POST("/favorites/:spotId", asUser("u-1", models.RoleUser), h.Create)
	r.DELETE("/favorites/:spotId", asUser("u-1", models.RoleUser), h.Delete)
	return r
}

func TestFavoriteCreate(t *testing.T) {
	spots := newFakeSpotStore(models.TouristSpot{ID: "s-1"})
	store := newFakeFavoriteStore()
	r := favoriteRouter(store, spots)

	t.Run("ajout : 201", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/favorites/s-1", nil))
		if rec.Code != http.StatusCreated {
			t.Fatalf("statut = %d (%s)", rec.Code, rec.Body)
		}
	})

	t.Run("doublon : 409", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/favorites/s-1", nil))
		if rec.Code != http.StatusConflict {
			t.Errorf("statut = %d, attendu 409", rec.Code)
		}
	})

	t.Run("spot inconnu : 404", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/favorites/absent", nil))
		if rec.Code != http.StatusNotFound {
			t.Errorf("statut = %d, attendu 404", rec.Code)
		}
	})
}

func TestFavoriteDelete(t *testing.T) {
	spots := newFakeSpotStore(models.TouristSpot{ID: "s-1"})
	store := newFakeFavoriteStore()
	store.Create("s-1", "u-1")
	r := favoriteRouter(store, spots)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/favorites/s-1", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("statut = %d (%s)", rec.Code, rec.Body)
	}

	t.Run("déjà supprimé : 404", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/favorites/s-1", nil))
		if rec.Code != http.StatusNotFound {
			t.Errorf("statut = %d, attendu 404", rec.Code)
		}
	})
}

func TestFavoriteList(t *testing.T) {
	spots := newFakeSpotStore(models.TouristSpot{ID: "s-1"})
	store := newFakeFavoriteStore()
	store.Create("s-1", "u-1")
	store.Create("s-1", "autre-utilisateur")
	r := favoriteRouter(store, spots)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/favorites", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("statut = %d", rec.Code)
	}
	// Seuls les favoris de l'utilisateur courant
	var got []models.FavoriteWithSpot
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].UserID != "u-1" {
		t.Errorf("favoris = %+v", got)
	}
}
