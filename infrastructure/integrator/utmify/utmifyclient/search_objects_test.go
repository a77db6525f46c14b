package utmifyclient

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
	"github.com/grupogritt/metrics-sync/internal/domain"
)

func testClientConfig(baseURL string) *config.Config {
	cfg := &config.Config{}
	cfg.Utmify.BaseURL = baseURL
	cfg.Utmify.Origin = "https://app.utmify.com.br"
	cfg.Utmify.TimeoutSeconds = 5
	cfg.Utmify.MaxRetries = 0
	cfg.Utmify.BackoffSeconds = 0.001
	return cfg
}

func TestSearchAdObjects(t *testing.T) {
	var captured struct {
		path    string
		method  string
		auth    string
		origin  string
		referer string
		body    string
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.path = r.URL.Path
		captured.method = r.Method
		captured.auth = r.Header.Get("Authorization")
		captured.origin = r.Header.Get("Origin")
		captured.referer = r.Header.Get("Referer")

		body, _ := io.ReadAll(r.Body)
		captured.body = string(body)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[{"id":"camp-1","name":"Campanha A","spend":12345},{"adId":"ad-9","id":"row-2","name":"Criativo B"}]}`))
	}))
	defer server.Close()

	client := NewClient(testClientConfig(server.URL), tokens.NewStaticProvider("utmify", "tok-123"))

	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	records, err := client.SearchAdObjects(context.Background(), "dash-1", domain.LevelCampaign, date)

	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "/orders/search-objects", captured.path)
	assert.Equal(t, http.MethodPost, captured.method)
	assert.Equal(t, "Bearer tok-123", captured.auth)
	assert.Equal(t, "https://app.utmify.com.br", captured.origin)
	assert.Equal(t, "https://app.utmify.com.br/", captured.referer)

	// A janela do dia comercial UTC-3 e os filtros nulos fazem parte do contrato
	assert.Contains(t, captured.body, `"level":"campaign"`)
	assert.Contains(t, captured.body, `"from":"2025-03-15T03:00:00.000Z"`)
	assert.Contains(t, captured.body, `"to":"2025-03-16T02:59:59.999Z"`)
	assert.Contains(t, captured.body, `"orderBy":"greater_profit"`)
	assert.Contains(t, captured.body, `"dashboardId":"dash-1"`)
	assert.Contains(t, captured.body, `"nameContains":null`)

	assert.Equal(t, "camp-1", records[0].EntityID())
	assert.Equal(t, "Campanha A", records[0].Name)
	require.NotNil(t, records[0].Spend)
	assert.Equal(t, int64(12345), *records[0].Spend)
	assert.Equal(t, "ad-9", records[1].EntityID())
}

func TestSearchAdObjects_RespostaMalformada(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>pagina de erro</html>`))
	}))
	defer server.Close()

	client := NewClient(testClientConfig(server.URL), tokens.NewStaticProvider("utmify", "tok-123"))

	_, err := client.SearchAdObjects(context.Background(), "dash-1", domain.LevelAd, time.Now())

	require.Error(t, err)

	var malformed *MalformedResponseError
	assert.ErrorAs(t, err, &malformed)
}

func TestSearchAdObjects_SemCredencial(t *testing.T) {
	client := NewClient(testClientConfig("http://localhost:0"), tokens.NewStaticProvider("utmify", ""))

	_, err := client.SearchAdObjects(context.Background(), "dash-1", domain.LevelCampaign, time.Now())

	require.Error(t, err)
	assert.ErrorIs(t, err, tokens.ErrTokenUnavailable)
}

func TestSearchAdObjects_ResultadosVazios(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	client := NewClient(testClientConfig(server.URL), tokens.NewStaticProvider("utmify", "tok-123"))

	records, err := client.SearchAdObjects(context.Background(), "dash-1", domain.LevelCampaign, time.Now())

	require.NoError(t, err)
	assert.Empty(t, records)
}
