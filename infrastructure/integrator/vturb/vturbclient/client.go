package vturbclient

import (
	"context"
	"time"

	"github.com/grupogritt/metrics-sync/infrastructure/integrator/tokens"
	vturbdomain "github.com/grupogritt/metrics-sync/infrastructure/integrator/vturb/domain"
	"github.com/grupogritt/metrics-sync/internal/config"
	"github.com/grupogritt/metrics-sync/pkg/httpretry"
)

type Client interface {
	GetPlayerStats(ctx context.Context, playerID string, date time.Time) (*vturbdomain.PlayerStats, error)
}

type VturbClient struct {
	cfg        *config.Config
	tokens     tokens.Provider
	httpClient *httpretry.Client
}

func NewClient(cfg *config.Config, tokenProvider tokens.Provider) Client {
	return &VturbClient{
		cfg:    cfg,
		tokens: tokenProvider,
		httpClient: httpretry.New(httpretry.Config{
			MaxRetries: cfg.Vturb.MaxRetries,
			Backoff:    cfg.Vturb.Backoff(),
			Timeout:    cfg.Vturb.Timeout(),
		}),
	}
}
