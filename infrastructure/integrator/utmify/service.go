package utmify

import (
	"context"
	"time"

	utmifydomain "github.com/grupogritt/metrics-sync/infrastructure/integrator/utmify/domain"
	"github.com/grupogritt/metrics-sync/infrastructure/integrator/utmify/utmifyclient"
	"github.com/grupogritt/metrics-sync/internal/config"
	"github.com/grupogritt/metrics-sync/internal/domain"
	"github.com/grupogritt/metrics-sync/pkg/utils"
)

// UtmifyIntegrator busca objetos de anúncio brutos e os normaliza para o
// registro canônico.
type UtmifyIntegrator interface {
	FetchAdObjects(ctx context.Context, dashboardID string, level domain.Level, date time.Time) ([]utmifydomain.AdObject, error)
	Normalize(raw utmifydomain.AdObject, level domain.Level, reportDate time.Time) domain.AdObjectInsight
}

type Service struct {
	cfg    *config.Config
	client utmifyclient.Client
}

func New(cfg *config.Config, client utmifyclient.Client) *Service {
	return &Service{
		cfg:    cfg,
		client: client,
	}
}

func (s *Service) FetchAdObjects(ctx context.Context, dashboardID string, level domain.Level, date time.Time) ([]utmifydomain.AdObject, error) {
	return s.client.SearchAdObjects(ctx, dashboardID, level, date)
}

// Normalize converte o registro bruto do provedor no registro canônico.
// Função pura e total: campos opcionais ausentes viram NULL (monetários) ou
// zero (contagens e taxas); createdTime não interpretável vira nil.
func (s *Service) Normalize(raw utmifydomain.AdObject, level domain.Level, reportDate time.Time) domain.AdObjectInsight {
	effectiveLevel := level
	if raw.Level != "" {
		effectiveLevel = domain.Level(raw.Level)
	}

	return domain.AdObjectInsight{
		EntityID:   raw.EntityID(),
		ReportDate: reportDate,
		Level:      effectiveLevel,

		Name:            raw.Name,
		Status:          raw.Status,
		EffectiveStatus: raw.EffectiveStatus,
		AccountID:       raw.AccountID,
		ProfileID:       raw.ProfileID,
		CA:              raw.CA,
		CampaignID:      raw.CampaignID,
		AdsetID:         raw.AdsetID,

		DailyBudget:    utils.CentsToDecimal(raw.DailyBudget),
		LifetimeBudget: utils.CentsToDecimal(raw.LifetimeBudget),
		Spend:          utils.CentsToDecimal(raw.Spend),
		Revenue:        utils.CentsToDecimal(raw.Revenue),
		GrossRevenue:   utils.CentsToDecimal(raw.GrossRevenue),
		Profit:         utils.CentsToDecimal(raw.Profit),
		Fees:           utils.CentsToDecimal(raw.Fees),
		Tax:            utils.CentsToDecimal(raw.Tax),
		ProductCosts:   utils.CentsToDecimal(raw.ProductCosts),

		ROAS:         raw.ROAS,
		ROI:          raw.ROI,
		ProfitMargin: raw.ProfitMargin,

		CPA: utils.CentsToDecimal(raw.CPA),
		CPM: utils.CentsToDecimal(raw.CPM),
		CPC: utils.CentsToDecimal(raw.CostPerInlineLinkClick),
		CTR: raw.InlineLinkClickCtr,

		Impressions: raw.Impressions,
		Clicks:      raw.InlineLinkClicks,
		Frequency:   raw.Frequency,

		TotalOrders:       raw.TotalOrdersCount,
		ApprovedOrders:    raw.ApprovedOrdersCount,
		PendingOrders:     raw.PendingOrdersCount,
		RefundedOrders:    raw.RefundedOrdersCount,
		RefusedOrders:     raw.RefusedOrdersCount,
		SalesFromFacebook: raw.SalesFromFacebook,

		PendingRevenue:  utils.CentsToDecimal(raw.PendingRevenue),
		RefundedRevenue: utils.CentsToDecimal(raw.RefundedRevenue),

		InitiateCheckout:   raw.InitiateCheckout,
		CostPerCheckout:    utils.CentsToDecimal(raw.CostPerInitiateCheckout),
		CheckoutConversion: raw.CheckoutConversion,
		ClickConversion:    raw.ClickConversion,

		LandingPageViews: raw.LandingPageViews,
		Leads:            raw.Leads,
		CostPerLead:      utils.CentsToDecimal(raw.CostPerLead),

		VideoViews:     raw.VideoViews,
		Video75Watched: raw.Video75Watched,
		Video3sViews:   raw.VideoViews3Seconds,
		HookRate:       raw.Hook,
		Retention:      raw.Retention,
		HookPlayRate:   raw.HookPlayRate,

		Conversations:       raw.Conversations,
		CostPerConversation: utils.CentsToDecimal(raw.CostPerConversation),

		CreatedTime: s.parseCreatedTime(raw.CreatedTime, effectiveLevel),
	}
}

// parseCreatedTime aplica a regra de offset adequada ao nível: criativos
// chegam com sufixo "Z", campanhas com offset compacto "-0300"/"-0200".
func (s *Service) parseCreatedTime(value string, level domain.Level) *time.Time {
	if level == domain.LevelCampaign {
		return utils.ParseCompactOffsetTimestamp(value)
	}
	return utils.ParseZuluTimestamp(value)
}
