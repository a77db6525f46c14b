package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Level é a granularidade de um objeto de anúncio no Utmify
type Level string

const (
	LevelCampaign Level = "campaign"
	LevelAd       Level = "ad"
)

// AdObjectInsight é o registro canônico de métricas diárias de um objeto de
// anúncio (campanha ou criativo), já normalizado: valores monetários em reais
// (duas casas), contagens com default zero e taxas com default zero.
// Chave natural: (EntityID, ReportDate).
type AdObjectInsight struct {
	EntityID   string
	ReportDate time.Time
	Level      Level

	Name            string
	Status          string
	EffectiveStatus string
	AccountID       string
	ProfileID       string
	CA              string
	CampaignID      string
	AdsetID         string

	DailyBudget    decimal.NullDecimal
	LifetimeBudget decimal.NullDecimal
	Spend          decimal.NullDecimal
	Revenue        decimal.NullDecimal
	GrossRevenue   decimal.NullDecimal
	Profit         decimal.NullDecimal
	Fees           decimal.NullDecimal
	Tax            decimal.NullDecimal
	ProductCosts   decimal.NullDecimal

	ROAS         float64
	ROI          float64
	ProfitMargin float64

	CPA decimal.NullDecimal
	CPM decimal.NullDecimal
	CPC decimal.NullDecimal
	CTR float64

	Impressions int64
	Clicks      int64
	Frequency   float64

	TotalOrders       int64
	ApprovedOrders    int64
	PendingOrders     int64
	RefundedOrders    int64
	RefusedOrders     int64
	SalesFromFacebook int64

	PendingRevenue  decimal.NullDecimal
	RefundedRevenue decimal.NullDecimal

	InitiateCheckout   int64
	CostPerCheckout    decimal.NullDecimal
	CheckoutConversion float64
	ClickConversion    float64

	LandingPageViews int64
	Leads            int64
	CostPerLead      decimal.NullDecimal

	VideoViews     int64
	Video75Watched int64
	Video3sViews   int64
	HookRate       float64
	Retention      float64
	HookPlayRate   float64

	Conversations       int64
	CostPerConversation decimal.NullDecimal

	CreatedTime *time.Time
}
