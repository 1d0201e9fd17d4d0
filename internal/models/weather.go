package models

// Weather : météo courante renvoyée par OpenWeatherMap pour les
// coordonnées d'un spot. Toujours optionnelle dans les réponses.
type Weather struct {
	Temp      float64 `json:"temp"`
	Condition string  `json:"condition"`
	Icon      string  `json:"icon"`
	City      string  `json:"city"`
}
