package discord

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osmundr/GielinorBot_Go/internal/domain"
)

func TestAPIClientSimulateKills(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/simulate", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("X-API-Key"))

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Zulrah", req["monster"])
		assert.Equal(t, float64(100), req["kill_count"])

		json.NewEncoder(w).Encode(domain.SimulationResult{
			MonsterName: "Zulrah",
			KillCount:   100,
			Loot:        map[string]int{"Zulrah's scales": 29900},
		})
	}))
	defer srv.Close()

	client := NewAPIClient(srv.URL, "secret")
	result, err := client.SimulateKills("Zulrah", 100)

	require.NoError(t, err)
	assert.Equal(t, "Zulrah", result.MonsterName)
	assert.Equal(t, 29900, result.Loot["Zulrah's scales"])
}

func TestAPIClientSurfacesErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Couldn't find that monster on the wiki"})
	}))
	defer srv.Close()

	client := NewAPIClient(srv.URL, "")
	_, err := client.GetDropTable("Gobblin")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "API error: Couldn't find that monster on the wiki")
}

func TestAPIClientGetPriceEncodesQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/prices", r.URL.Path)
		assert.Equal(t, "Twisted bow", r.URL.Query().Get("item"))

		json.NewEncoder(w).Encode(domain.ItemPrice{
			ItemName: "Twisted bow",
			ItemID:   20997,
			High:     1600000000,
			Low:      1590000000,
		})
	}))
	defer srv.Close()

	client := NewAPIClient(srv.URL, "")
	price, err := client.GetPrice("Twisted bow")

	require.NoError(t, err)
	assert.Equal(t, 20997, price.ItemID)
}

func TestAPIClientPlayRPS(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/rps", r.URL.Path)

		json.NewEncoder(w).Encode(domain.RPSResult{
			PlayerMove: domain.RPSRock,
			BotMove:    domain.RPSScissors,
			Outcome:    domain.RPSWin,
		})
	}))
	defer srv.Close()

	client := NewAPIClient(srv.URL, "")
	result, err := client.PlayRPS("rock")

	require.NoError(t, err)
	assert.Equal(t, domain.RPSWin, result.Outcome)
}

func TestAPIClientRetriesServerErrors(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping retry test in short mode")
	}

	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(domain.RPSResult{Outcome: domain.RPSDraw})
	}))
	defer srv.Close()

	client := NewAPIClient(srv.URL, "")
	result, err := client.PlayRPS("rock")

	require.NoError(t, err)
	assert.Equal(t, domain.RPSDraw, result.Outcome)
	assert.Equal(t, 3, attempts)
}
