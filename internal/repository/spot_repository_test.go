package repository

import (
	"strings"
	"testing"

	"tourism_backend/internal/models"
)

func TestBuildSpotFilter(t *testing.T) {
	t.Run("sans filtre", func(t *testing.T) {
		where, args := buildSpotFilter(models.SpotFilter{})
		if where != " WHERE 1=1" {
			t.Errorf("where = %q", where)
		}
		if len(args) != 0 {
			t.Errorf("args = %v, attendu vide", args)
		}
	})

	t.Run("ville insensible à la casse", func(t *testing.T) {
		where, args := buildSpotFilter(models.SpotFilter{City: "PARIS"})
		if !strings.Contains(where, "LOWER(city) LIKE ?") {
			t.Errorf("where = %q", where)
		}
		if len(args) != 1 || args[0] != "%paris%" {
			t.Errorf("args = %v", args)
		}
	})

	t.Run("note minimale seulement si posée", func(t *testing.T) {
		where, _ := buildSpotFilter(models.SpotFilter{MinRating: 0})
		if strings.Contains(where, "average_rating") {
			t.Errorf("minRating absent ne doit pas filtrer: %q", where)
		}

		where, args := buildSpotFilter(models.SpotFilter{MinRating: 0, HasMin: true})
		if !strings.Contains(where, "average_rating >= ?") {
			t.Errorf("where = %q", where)
		}
		// minRating=0 explicite est un filtre valide
		if len(args) != 1 || args[0] != float64(0) {
			t.Errorf("args = %v", args)
		}
	})

	t.Run("recherche sur nom et description", func(t *testing.T) {
		where, args := buildSpotFilter(models.SpotFilter{Search: "Château"})
		if !strings.Contains(where, "LOWER(name) LIKE ?") || !strings.Contains(where, "LOWER(description) LIKE ?") {
			t.Errorf("where = %q", where)
		}
		if len(args) != 2 || args[0] != "%château%" || args[1] != "%château%" {
			t.Errorf("args = %v", args)
		}
	})

	t.Run("filtres cumulés dans l'ordre", func(t *testing.T) {
		f := models.SpotFilter{
			City: "paris", State: "idf", Country: "france",
			MinRating: 3.5, HasMin: true, Search: "tour",
		}
		where, args := buildSpotFilter(f)
		if got := strings.Count(where, "?"); got != 6 {
			t.Errorf("%d placeholders, attendu 6 (%q)", got, where)
		}
		if len(args) != 6 {
			t.Errorf("%d args, attendu 6", len(args))
		}
	})
}

func TestSpotOrderBy(t *testing.T) {
	cases := []struct {
		sortBy, sortOrder, want string
	}{
		{"", "", " ORDER BY created_at DESC"},
		{"name", "asc", " ORDER BY name ASC"},
		{"name", "ASC", " ORDER BY name ASC"},
		{"rating", "desc", " ORDER BY average_rating DESC"},
		// Champ inconnu : repli sûr, jamais interpolé tel quel
		{"name; DROP TABLE tourist_spots", "asc", " ORDER BY created_at ASC"},
		{"created_at", "n'importe quoi", " ORDER BY created_at DESC"},
	}
	for _, tc := range cases {
		if got := spotOrderBy(tc.sortBy, tc.sortOrder); got != tc.want {
			t.Errorf("spotOrderBy(%q, %q) = %q, attendu %q", tc.sortBy, tc.sortOrder, got, tc.want)
		}
	}
}
