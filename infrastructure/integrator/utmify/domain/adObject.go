package domain

// AdObject é o registro bruto devolvido pelo endpoint orders/search-objects.
// Valores monetários chegam em centavos e podem estar ausentes; contagens e
// taxas ausentes assumem zero na decodificação.
type AdObject struct {
	AdID *string `json:"adId"`
	ID   string  `json:"id"`

	CampaignID string `json:"campaignId"`
	AdsetID    string `json:"adsetId"`
	AccountID  string `json:"accountId"`
	ProfileID  string `json:"profileId"`
	CA         string `json:"ca"`

	Name            string `json:"name"`
	Level           string `json:"level"`
	Status          string `json:"status"`
	EffectiveStatus string `json:"effectiveStatus"`

	DailyBudget    *int64 `json:"dailyBudget"`
	LifetimeBudget *int64 `json:"lifetimeBudget"`
	Spend          *int64 `json:"spend"`
	Revenue        *int64 `json:"revenue"`
	GrossRevenue   *int64 `json:"grossRevenue"`
	Profit         *int64 `json:"profit"`
	Fees           *int64 `json:"fees"`
	Tax            *int64 `json:"tax"`
	ProductCosts   *int64 `json:"productCosts"`

	ROAS         float64 `json:"roas"`
	ROI          float64 `json:"roi"`
	ProfitMargin float64 `json:"profitMargin"`

	CPA                    *int64  `json:"cpa"`
	CPM                    *int64  `json:"cpm"`
	CostPerInlineLinkClick *int64  `json:"costPerInlineLinkClick"`
	InlineLinkClickCtr     float64 `json:"inlineLinkClickCtr"`

	Impressions      int64   `json:"impressions"`
	InlineLinkClicks int64   `json:"inlineLinkClicks"`
	Frequency        float64 `json:"frequency"`

	TotalOrdersCount    int64 `json:"totalOrdersCount"`
	ApprovedOrdersCount int64 `json:"approvedOrdersCount"`
	PendingOrdersCount  int64 `json:"pendingOrdersCount"`
	RefundedOrdersCount int64 `json:"refundedOrdersCount"`
	RefusedOrdersCount  int64 `json:"refusedOrdersCount"`
	SalesFromFacebook   int64 `json:"salesFromFacebook"`

	PendingRevenue  *int64 `json:"pendingRevenue"`
	RefundedRevenue *int64 `json:"refundedRevenue"`

	InitiateCheckout        int64   `json:"initiateCheckout"`
	CostPerInitiateCheckout *int64  `json:"costPerInitiateCheckout"`
	CheckoutConversion      float64 `json:"checkoutConversion"`
	ClickConversion         float64 `json:"clickConversion"`

	LandingPageViews int64  `json:"landingPageViews"`
	Leads            int64  `json:"leads"`
	CostPerLead      *int64 `json:"costPerLead"`

	VideoViews         int64   `json:"videoViews"`
	Video75Watched     int64   `json:"video75Watched"`
	VideoViews3Seconds int64   `json:"videoViews3Seconds"`
	Hook               float64 `json:"hook"`
	Retention          float64 `json:"retention"`
	HookPlayRate       float64 `json:"hookPlayRate"`

	Conversations       int64  `json:"conversations"`
	CostPerConversation *int64 `json:"costPerConversation"`

	CreatedTime string `json:"createdTime"`
}

// EntityID devolve o identificador usado para dedup entre dashboards:
// adId quando presente, senão id. Vazio significa registro inendereçável.
func (a AdObject) EntityID() string {
	if a.AdID != nil && *a.AdID != "" {
		return *a.AdID
	}
	return a.ID
}
