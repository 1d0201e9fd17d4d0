// Package validation porte les contrôles de schéma appliqués hors du
// binding Gin, notamment sur chaque enregistrement du pipeline d'import.
package validation

import (
	"fmt"

	"tourism_backend/internal/models"
)

type fieldRule struct {
	name  string
	value string
	min   int
	max   int
}

// ValidateSpotInput applique le schéma de création d'un spot : longueurs
// de champs et bornes géographiques. Retourne la première violation.
func ValidateSpotInput(in models.SpotInput) error {
	rules := []fieldRule{
		{"name", in.Name, 1, 255},
		{"description", in.Description, 1, 2000},
		{"city", in.City, 1, 120},
		{"state", in.State, 1, 120},
		{"country", in.Country, 1, 120},
		{"address", in.Address, 1, 255},
	}
	for _, r := range rules {
		if len(r.value) < r.min {
			return fmt.Errorf("champ '%s' requis", r.name)
		}
		if len(r.value) > r.max {
			return fmt.Errorf("champ '%s' trop long (max %d caractères)", r.name, r.max)
		}
	}

	if in.Lat < -90 || in.Lat > 90 {
		return fmt.Errorf("latitude hors bornes [-90, 90]: %v", in.Lat)
	}
	if in.Lng < -180 || in.Lng > 180 {
		return fmt.Errorf("longitude hors bornes [-180, 180]: %v", in.Lng)
	}
	return nil
}
