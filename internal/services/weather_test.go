package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testWeatherClient(url string) *WeatherClient {
	w := NewWeatherClient("test-key")
	w.baseURL = url
	return w
}

func TestWeatherGet(t *testing.T) {
	t.Run("réponse valide", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("appid") != "test-key" {
				t.Errorf("appid = %q", r.URL.Query().Get("appid"))
			}
			rw.Write([]byte(`{"name":"Paris","main":{"temp":21.5},"weather":[{"main":"Clouds","icon":"04d"}]}`))
		}))
		defer srv.Close()

		w := testWeatherClient(srv.URL).Get(context.Background(), 48.85, 2.35)
		if w == nil {
			t.Fatal("météo attendue")
		}
		if w.Temp != 21.5 || w.Condition != "Clouds" || w.City != "Paris" {
			t.Errorf("météo = %+v", w)
		}
		if w.Icon != "https://openweathermap.org/img/wn/04d@2x.png" {
			t.Errorf("icon = %q", w.Icon)
		}
	})

	t.Run("clé absente", func(t *testing.T) {
		w := NewWeatherClient("")
		if got := w.Get(context.Background(), 0, 0); got != nil {
			t.Errorf("nil attendu sans clé API, reçu %+v", got)
		}
	})

	t.Run("statut non-200", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
			rw.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		if got := testWeatherClient(srv.URL).Get(context.Background(), 0, 0); got != nil {
			t.Errorf("nil attendu sur statut 401, reçu %+v", got)
		}
	})

	t.Run("corps illisible", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
			rw.Write([]byte("pas du json"))
		}))
		defer srv.Close()

		if got := testWeatherClient(srv.URL).Get(context.Background(), 0, 0); got != nil {
			t.Errorf("nil attendu sur corps illisible, reçu %+v", got)
		}
	})

	t.Run("tiers trop lent", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer srv.Close()

		w := testWeatherClient(srv.URL)
		w.client.Timeout = 50 * time.Millisecond
		if got := w.Get(context.Background(), 0, 0); got != nil {
			t.Errorf("nil attendu sur timeout, reçu %+v", got)
		}
	})
}
