package vturbclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grupogritt/metrics-sync/infrastructure/integrator/tokens"
	"github.com/grupogritt/metrics-sync/internal/config"
)

func testClientConfig(baseURL string) *config.Config {
	cfg := &config.Config{}
	cfg.Vturb.BaseURL = baseURL
	cfg.Vturb.Timezone = "America/Sao_Paulo"
	cfg.Vturb.TimeoutSeconds = 5
	cfg.Vturb.MaxRetries = 0
	cfg.Vturb.BackoffSeconds = 0.001
	return cfg
}

func TestGetPlayerStats_EnvelopeStats(t *testing.T) {
	var captured struct {
		path string
		body string
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.path = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		captured.body = string(body)

		w.Write([]byte(`{"stats":{"views":{"totalEvents":1000},"conversions":{"totalEvents":12,"totalAmountBrl":1490.5},"playRate":{"overallPlayRate":0.6}}}`))
	}))
	defer server.Close()

	client := NewClient(testClientConfig(server.URL), tokens.NewStaticProvider("vturb", "tok-v"))

	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	stats, err := client.GetPlayerStats(context.Background(), "player-abc", date)

	require.NoError(t, err)
	assert.Equal(t, "/vturb/v2/players/player-abc/analytics_stream/player_stats", captured.path)

	assert.Contains(t, captured.body, `"player_id":"player-abc"`)
	assert.Contains(t, captured.body, `"start_date":"2025-03-15 00:00:00"`)
	assert.Contains(t, captured.body, `"end_date":"2025-03-15 23:59:59"`)
	assert.Contains(t, captured.body, `"timezone":"America/Sao_Paulo"`)

	assert.Equal(t, int64(1000), stats.Views.TotalEvents)
	assert.Equal(t, int64(12), stats.Conversions.TotalEvents)
	assert.Equal(t, 1490.5, stats.Conversions.TotalAmountBrl)
	assert.Equal(t, 0.6, stats.PlayRate.OverallPlayRate)
}

func TestGetPlayerStats_CorpoPlano(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Mesmo payload, sem o envelope "stats"
		w.Write([]byte(`{"views":{"totalEvents":500},"plays":{"totalEvents":300}}`))
	}))
	defer server.Close()

	client := NewClient(testClientConfig(server.URL), tokens.NewStaticProvider("vturb", "tok-v"))

	stats, err := client.GetPlayerStats(context.Background(), "player-abc", time.Now())

	require.NoError(t, err)
	assert.Equal(t, int64(500), stats.Views.TotalEvents)
	assert.Equal(t, int64(300), stats.Plays.TotalEvents)
}

func TestGetPlayerStats_RespostaMalformada(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`nao é json`))
	}))
	defer server.Close()

	client := NewClient(testClientConfig(server.URL), tokens.NewStaticProvider("vturb", "tok-v"))

	_, err := client.GetPlayerStats(context.Background(), "player-abc", time.Now())

	require.Error(t, err)

	var malformed *MalformedResponseError
	assert.ErrorAs(t, err, &malformed)
}

func TestGetPlayerStats_SemCredencial(t *testing.T) {
	client := NewClient(testClientConfig("http://localhost:0"), tokens.NewStaticProvider("vturb", ""))

	_, err := client.GetPlayerStats(context.Background(), "player-abc", time.Now())

	require.Error(t, err)
	assert.ErrorIs(t, err, tokens.ErrTokenUnavailable)
}
