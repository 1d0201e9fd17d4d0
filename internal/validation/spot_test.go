package validation

import (
	"strings"
	"testing"

	"tourism_backend/internal/models"
)

func validInput() models.SpotInput {
	return models.SpotInput{
		Name:        "Mont Saint-Michel",
		Description: "Îlot rocheux et abbaye en Normandie",
		City:        "Le Mont-Saint-Michel",
		State:       "Normandie",
		Country:     "France",
		Address:     "50170 Le Mont-Saint-Michel",
		Lat:         48.636,
		Lng:         -1.5115,
	}
}

func TestValidateSpotInput(t *testing.T) {
	t.Run("entrée valide", func(t *testing.T) {
		if err := ValidateSpotInput(validInput()); err != nil {
			t.Errorf("erreur inattendue: %v", err)
		}
	})

	t.Run("bornes géographiques incluses", func(t *testing.T) {
		in := validInput()
		in.Lat, in.Lng = 90, -180
		if err := ValidateSpotInput(in); err != nil {
			t.Errorf("les bornes exactes doivent passer: %v", err)
		}
	})

	cases := []struct {
		name   string
		mutate func(*models.SpotInput)
	}{
		{"nom vide", func(in *models.SpotInput) { in.Name = "" }},
		{"nom trop long", func(in *models.SpotInput) { in.Name = strings.Repeat("a", 256) }},
		{"description vide", func(in *models.SpotInput) { in.Description = "" }},
		{"description trop longue", func(in *models.SpotInput) { in.Description = strings.Repeat("a", 2001) }},
		{"ville trop longue", func(in *models.SpotInput) { in.City = strings.Repeat("a", 121) }},
		{"adresse trop longue", func(in *models.SpotInput) { in.Address = strings.Repeat("a", 256) }},
		{"latitude trop grande", func(in *models.SpotInput) { in.Lat = 90.0001 }},
		{"latitude trop petite", func(in *models.SpotInput) { in.Lat = -90.0001 }},
		{"longitude trop grande", func(in *models.SpotInput) { in.Lng = 180.0001 }},
		{"longitude trop petite", func(in *models.SpotInput) { in.Lng = -180.0001 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			if err := ValidateSpotInput(in); err == nil {
				t.Error("erreur attendue")
			}
		})
	}
}
