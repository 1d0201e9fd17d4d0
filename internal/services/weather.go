package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"tourism_backend/internal/models"
)

const defaultWeatherBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// WeatherClient interroge OpenWeatherMap pour décorer un spot avec la
// météo de ses coordonnées. Timeout court : un tiers lent ne doit jamais
// bloquer la lecture d'un spot.
type WeatherClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewWeatherClient(apiKey string) *WeatherClient {
	return &WeatherClient{
		apiKey:  apiKey,
		baseURL: defaultWeatherBaseURL,
		client:  &http.Client{Timeout: 3 * time.Second},
	}
}

// Get retourne nil sur toute défaillance (clé absente, timeout, statut
// non-200, corps illisible) : la météo est purement décorative.
func (w *WeatherClient) Get(ctx context.Context, lat, lng float64) *models.Weather {
	if w.apiKey == "" {
		return nil
	}

	url := fmt.Sprintf("%s?lat=%f&lon=%f&units=metric&appid=%s", w.baseURL, lat, lng, w.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil
	}

	resp, err := w.client.Do(req)
	if err != nil {
		log.Printf("⚠️ Météo injoignable: %v", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("⚠️ Météo: statut %d", resp.StatusCode)
		return nil
	}

	var payload struct {
		Name string `json:"name"`
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Main string `json:"main"`
			Icon string `json:"icon"`
		} `json:"weather"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("⚠️ Météo: réponse illisible: %v", err)
		return nil
	}
	if len(payload.Weather) == 0 {
		return nil
	}

	return &models.Weather{
		Temp:      payload.Main.Temp,
		Condition: payload.Weather[0].Main,
		Icon:      fmt.Sprintf("https://openweathermap.org/img/wn/%s@2x.png", payload.Weather[0].Icon),
		City:      payload.Name,
	}
}
