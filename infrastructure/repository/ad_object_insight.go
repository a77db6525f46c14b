package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/grupogritt/metrics-sync/infrastructure/database/postgres"
	"github.com/grupogritt/metrics-sync/internal/domain"
)

// adObjectColumns é o conjunto único de colunas compartilhado pelas quatro
// tabelas de objetos de anúncio. Campanhas e criativos usam o mesmo esquema;
// colunas que não se aplicam ao nível ficam NULL.
var adObjectColumns = []string{
	"entity_id", "report_date", "level",
	"name", "status", "effective_status",
	"account_id", "profile_id", "ca", "campaign_id", "adset_id",
	"daily_budget", "lifetime_budget",
	"spend", "revenue", "gross_revenue", "profit", "fees", "tax", "product_costs",
	"roas", "roi", "profit_margin",
	"cpa", "cpm", "cpc", "ctr",
	"impressions", "clicks", "frequency",
	"total_orders", "approved_orders", "pending_orders", "refunded_orders",
	"refused_orders", "sales_from_facebook", "pending_revenue", "refunded_revenue",
	"initiate_checkout", "cost_per_checkout", "checkout_conversion", "click_conversion",
	"landing_page_views", "leads", "cost_per_lead",
	"video_views", "video_75_watched", "video_3s_views", "hook_rate", "retention", "hook_play_rate",
	"conversations", "cost_per_conversation", "created_time",
}

// upsertSuffix lista as colunas de medida que uma nova extração pode
// sobrescrever no histórico. Identidade e colunas dimensionais restantes
// ficam intactas no conflito.
const upsertSuffix = `
	ON CONFLICT (entity_id, report_date) DO UPDATE SET
		name = EXCLUDED.name,
		status = EXCLUDED.status,
		effective_status = EXCLUDED.effective_status,
		spend = EXCLUDED.spend,
		revenue = EXCLUDED.revenue,
		gross_revenue = EXCLUDED.gross_revenue,
		profit = EXCLUDED.profit,
		fees = EXCLUDED.fees,
		roas = EXCLUDED.roas,
		roi = EXCLUDED.roi,
		profit_margin = EXCLUDED.profit_margin,
		cpa = EXCLUDED.cpa,
		impressions = EXCLUDED.impressions,
		clicks = EXCLUDED.clicks,
		total_orders = EXCLUDED.total_orders,
		approved_orders = EXCLUDED.approved_orders,
		pending_orders = EXCLUDED.pending_orders,
		initiate_checkout = EXCLUDED.initiate_checkout,
		video_views = EXCLUDED.video_views,
		hook_rate = EXCLUDED.hook_rate,
		retention = EXCLUDED.retention,
		hook_play_rate = EXCLUDED.hook_play_rate,
		updated_at = NOW()
`

// insertBatchSize limita linhas por INSERT para não estourar o limite de
// parâmetros do Postgres (65535) com tabelas largas.
const insertBatchSize = 500

// AdObjectTables identifica o par de tabelas de destino de um nível.
type AdObjectTables struct {
	Today   string
	History string
}

var (
	CampaignTables = AdObjectTables{Today: "campaigns_today", History: "campaigns_history"}
	AdTables       = AdObjectTables{Today: "ads_today", History: "ads_history"}
)

type AdObjectInsightRepository interface {
	ReplaceToday(ctx context.Context, insights []domain.AdObjectInsight) error
	UpsertHistory(ctx context.Context, insights []domain.AdObjectInsight) (int64, error)
}

type adObjectInsightRepository struct {
	conn   *postgres.Connection
	tables AdObjectTables
}

func NewAdObjectInsightRepository(conn *postgres.Connection, tables AdObjectTables) AdObjectInsightRepository {
	return &adObjectInsightRepository{
		conn:   conn,
		tables: tables,
	}
}

// ReplaceToday substitui o conteúdo da tabela de snapshot pelo lote, em uma
// única transação. Lote vazio limpa a tabela e encerra: é o estado
// documentado de "sem dados hoje", não um erro.
func (r *adObjectInsightRepository) ReplaceToday(ctx context.Context, insights []domain.AdObjectInsight) error {
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+r.tables.Today); err != nil {
			return fmt.Errorf("erro ao limpar a tabela %s: %w", r.tables.Today, err)
		}

		for _, batch := range batchInsights(insights) {
			query, args, err := r.buildInsert(r.tables.Today, batch, "")
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return wrapPqError(err)
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("erro ao substituir snapshot em %s: %w", r.tables.Today, err)
	}

	return nil
}

// UpsertHistory insere o lote na tabela de histórico, sobrescrevendo as
// colunas de medida em conflito de (entity_id, report_date). Devolve o total
// de linhas afetadas. Lote inteiro em uma transação.
func (r *adObjectInsightRepository) UpsertHistory(ctx context.Context, insights []domain.AdObjectInsight) (int64, error) {
	if len(insights) == 0 {
		return 0, nil
	}

	var affected int64

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, batch := range batchInsights(insights) {
			query, args, err := r.buildInsert(r.tables.History, batch, upsertSuffix)
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			result, err := tx.ExecContext(ctx, query, args...)
			if err != nil {
				return wrapPqError(err)
			}

			rows, err := result.RowsAffected()
			if err != nil {
				return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
			}
			affected += rows
		}

		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("erro ao gravar histórico em %s: %w", r.tables.History, err)
	}

	return affected, nil
}

func (r *adObjectInsightRepository) buildInsert(table string, insights []domain.AdObjectInsight, suffix string) (string, []interface{}, error) {
	builder := squirrel.StatementBuilder.
		Insert(table).
		Columns(adObjectColumns...).
		PlaceholderFormat(squirrel.Dollar)

	for _, insight := range insights {
		builder = builder.Values(
			insight.EntityID,
			insight.ReportDate.Format("2006-01-02"),
			string(insight.Level),
			insight.Name,
			insight.Status,
			insight.EffectiveStatus,
			insight.AccountID,
			insight.ProfileID,
			insight.CA,
			insight.CampaignID,
			insight.AdsetID,
			insight.DailyBudget,
			insight.LifetimeBudget,
			insight.Spend,
			insight.Revenue,
			insight.GrossRevenue,
			insight.Profit,
			insight.Fees,
			insight.Tax,
			insight.ProductCosts,
			insight.ROAS,
			insight.ROI,
			insight.ProfitMargin,
			insight.CPA,
			insight.CPM,
			insight.CPC,
			insight.CTR,
			insight.Impressions,
			insight.Clicks,
			insight.Frequency,
			insight.TotalOrders,
			insight.ApprovedOrders,
			insight.PendingOrders,
			insight.RefundedOrders,
			insight.RefusedOrders,
			insight.SalesFromFacebook,
			insight.PendingRevenue,
			insight.RefundedRevenue,
			insight.InitiateCheckout,
			insight.CostPerCheckout,
			insight.CheckoutConversion,
			insight.ClickConversion,
			insight.LandingPageViews,
			insight.Leads,
			insight.CostPerLead,
			insight.VideoViews,
			insight.Video75Watched,
			insight.Video3sViews,
			insight.HookRate,
			insight.Retention,
			insight.HookPlayRate,
			insight.Conversations,
			insight.CostPerConversation,
			insight.CreatedTime,
		)
	}

	if suffix != "" {
		builder = builder.Suffix(suffix)
	}

	return builder.ToSql()
}

func batchInsights(insights []domain.AdObjectInsight) [][]domain.AdObjectInsight {
	var batches [][]domain.AdObjectInsight

	for start := 0; start < len(insights); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(insights) {
			end = len(insights)
		}
		batches = append(batches, insights[start:end])
	}

	return batches
}

func wrapPqError(err error) error {
	if pqErr, ok := err.(*pq.Error); ok {
		return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
	}
	return fmt.Errorf("erro ao executar a query: %w", err)
}
