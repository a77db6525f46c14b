package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/grupogritt/metrics-sync/infrastructure/database/postgres"
	"github.com/grupogritt/metrics-sync/internal/domain"
)

var playerStatsColumns = []string{
	"player_id", "stats_date", "extraction_timestamp", "start_datetime", "end_datetime",
	"total_views", "total_unique_device_views", "total_unique_session_views",
	"total_plays", "total_unique_device_plays", "total_unique_session_plays",
	"total_finishes", "total_unique_device_finishes", "total_unique_session_finishes",
	"total_clicks", "total_unique_device_clicks", "total_unique_session_clicks",
	"total_conversions", "total_unique_device_conversions", "total_unique_session_conversions",
	"total_amount_brl", "total_amount_usd", "total_amount_eur",
	"overall_play_rate", "overall_conversion_rate",
	"average_watched_time", "engagement_rate", "pitch_time_retention_rate",
}

const playerStatsUpsertSuffix = `
	ON CONFLICT (player_id, stats_date) DO UPDATE SET
		extraction_timestamp = EXCLUDED.extraction_timestamp,
		total_views = EXCLUDED.total_views,
		total_unique_device_views = EXCLUDED.total_unique_device_views,
		total_plays = EXCLUDED.total_plays,
		total_unique_device_plays = EXCLUDED.total_unique_device_plays,
		total_finishes = EXCLUDED.total_finishes,
		total_clicks = EXCLUDED.total_clicks,
		total_conversions = EXCLUDED.total_conversions,
		total_amount_brl = EXCLUDED.total_amount_brl,
		overall_play_rate = EXCLUDED.overall_play_rate,
		overall_conversion_rate = EXCLUDED.overall_conversion_rate,
		average_watched_time = EXCLUDED.average_watched_time,
		engagement_rate = EXCLUDED.engagement_rate,
		pitch_time_retention_rate = EXCLUDED.pitch_time_retention_rate,
		updated_at = NOW()
`

const (
	playerStatsTodayTable   = "vturb_today"
	playerStatsHistoryTable = "vturb_history"
)

type PlayerStatsRepository interface {
	ReplaceToday(ctx context.Context, stats []domain.PlayerStats) error
	UpsertHistory(ctx context.Context, stats []domain.PlayerStats) (int64, error)
}

type playerStatsRepository struct {
	conn *postgres.Connection
}

func NewPlayerStatsRepository(conn *postgres.Connection) PlayerStatsRepository {
	return &playerStatsRepository{
		conn: conn,
	}
}

// ReplaceToday substitui o snapshot de players em uma única transação.
// Lote vazio deixa a tabela limpa de propósito.
func (r *playerStatsRepository) ReplaceToday(ctx context.Context, stats []domain.PlayerStats) error {
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+playerStatsTodayTable); err != nil {
			return fmt.Errorf("erro ao limpar a tabela %s: %w", playerStatsTodayTable, err)
		}

		if len(stats) == 0 {
			return nil
		}

		query, args, err := r.buildInsert(playerStatsTodayTable, stats, "")
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return wrapPqError(err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("erro ao substituir snapshot em %s: %w", playerStatsTodayTable, err)
	}

	return nil
}

// UpsertHistory grava o lote no histórico com sobrescrita das colunas de
// medida no conflito de (player_id, stats_date).
func (r *playerStatsRepository) UpsertHistory(ctx context.Context, stats []domain.PlayerStats) (int64, error) {
	if len(stats) == 0 {
		return 0, nil
	}

	var affected int64

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		query, args, err := r.buildInsert(playerStatsHistoryTable, stats, playerStatsUpsertSuffix)
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return wrapPqError(err)
		}

		affected, err = result.RowsAffected()
		if err != nil {
			return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("erro ao gravar histórico em %s: %w", playerStatsHistoryTable, err)
	}

	return affected, nil
}

func (r *playerStatsRepository) buildInsert(table string, stats []domain.PlayerStats, suffix string) (string, []interface{}, error) {
	builder := squirrel.StatementBuilder.
		Insert(table).
		Columns(playerStatsColumns...).
		PlaceholderFormat(squirrel.Dollar)

	for _, s := range stats {
		builder = builder.Values(
			s.PlayerID,
			s.StatsDate.Format("2006-01-02"),
			s.ExtractionTimestamp,
			s.StartDatetime,
			s.EndDatetime,
			s.TotalViews,
			s.TotalUniqueDeviceViews,
			s.TotalUniqueSessionViews,
			s.TotalPlays,
			s.TotalUniqueDevicePlays,
			s.TotalUniqueSessionPlays,
			s.TotalFinishes,
			s.TotalUniqueDeviceFinishes,
			s.TotalUniqueSessionFinishes,
			s.TotalClicks,
			s.TotalUniqueDeviceClicks,
			s.TotalUniqueSessionClicks,
			s.TotalConversions,
			s.TotalUniqueDeviceConversions,
			s.TotalUniqueSessionConversions,
			s.TotalAmountBRL,
			s.TotalAmountUSD,
			s.TotalAmountEUR,
			s.OverallPlayRate,
			s.OverallConversionRate,
			s.AverageWatchedTime,
			s.EngagementRate,
			s.PitchTimeRetentionRate,
		)
	}

	if suffix != "" {
		builder = builder.Suffix(suffix)
	}

	return builder.ToSql()
}
