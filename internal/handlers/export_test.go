package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tourism_backend/internal/models"
	"tourism_backend/internal/transfer"
)

func TestExportSpots(t *testing.T) {
	store := newFakeSpotStore(models.TouristSpot{
		ID: "s-1", Name: "Tour Eiffel", Description: "Monument",
		City: "Paris", State: "IDF", Country: "France",
		Lat: 48.85, Lng: 2.29, Address: "Champ de Mars",
	})
	h := NewExportHandler(store)
	r := newTestRouter()
	r.GET("/export/spots", h.Spots)

	t.Run("json par défaut", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/export/spots", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("statut = %d", rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
			t.Errorf("Content-Type = %q", ct)
		}
		if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "tourist-spots.json") {
			t.Errorf("Content-Disposition = %q", cd)
		}

		var records []transfer.Record
		if err := json.Unmarshal(rec.Body.Bytes(), &records); err != nil {
			t.Fatal(err)
		}
		if len(records) != 1 || records[0].Name != "Tour Eiffel" {
			t.Errorf("records = %+v", records)
		}
	})

	t.Run("csv et xml servis avec le bon type", func(t *testing.T) {
		for format, wantCT := range map[string]string{"csv": "text/csv", "xml": "application/xml"} {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/export/spots?format="+format, nil))
			if rec.Code != http.StatusOK {
				t.Errorf("%s: statut = %d", format, rec.Code)
			}
			if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, wantCT) {
				t.Errorf("%s: Content-Type = %q", format, ct)
			}
		}
	})

	t.Run("format inconnu : 400", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/export/spots?format=yaml", nil))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("statut = %d, attendu 400", rec.Code)
		}
	})
}
