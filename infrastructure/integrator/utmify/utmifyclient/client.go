package utmifyclient

import (
	"context"
	"time"

	"github.com/grupogritt/metrics-sync/infrastructure/integrator/tokens"
	utmifydomain "github.com/grupogritt/metrics-sync/infrastructure/integrator/utmify/domain"
	"github.com/grupogritt/metrics-sync/internal/config"
	"github.com/grupogritt/metrics-sync/internal/domain"
	"github.com/grupogritt/metrics-sync/pkg/httpretry"
)

type Client interface {
	SearchAdObjects(ctx context.Context, dashboardID string, level domain.Level, date time.Time) ([]utmifydomain.AdObject, error)
}

type UtmifyClient struct {
	cfg        *config.Config
	tokens     tokens.Provider
	httpClient *httpretry.Client
}

func NewClient(cfg *config.Config, tokenProvider tokens.Provider) Client {
	return &UtmifyClient{
		cfg:    cfg,
		tokens: tokenProvider,
		httpClient: httpretry.New(httpretry.Config{
			MaxRetries: cfg.Utmify.MaxRetries,
			Backoff:    cfg.Utmify.Backoff(),
			Timeout:    cfg.Utmify.Timeout(),
		}),
	}
}
