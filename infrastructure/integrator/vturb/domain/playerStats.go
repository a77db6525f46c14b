package domain

// EventStats é o trio de contadores que o VTurb devolve para cada tipo de
// evento do player. Valores monetários só aparecem no bloco de conversões.
type EventStats struct {
	TotalEvents            int64   `json:"totalEvents"`
	TotalUniqDeviceEvents  int64   `json:"totalUniqDeviceEvents"`
	TotalUniqSessionEvents int64   `json:"totalUniqSessionEvents"`
	TotalAmountBrl         float64 `json:"totalAmountBrl"`
	TotalAmountUsd         float64 `json:"totalAmountUsd"`
	TotalAmountEur         float64 `json:"totalAmountEur"`
}

type PlayRate struct {
	OverallPlayRate float64 `json:"overallPlayRate"`
}

type ConversionRate struct {
	OverallConversionRate float64 `json:"overallConversionRate"`
}

type EngagementStats struct {
	AverageWatchedTime     float64 `json:"average_watched_time"`
	EngagementRate         float64 `json:"engagement_rate"`
	PitchTimeRetentionRate float64 `json:"pitch_time_retention_rate"`
}

// PlayerStats é o payload bruto do endpoint analytics_stream/player_stats.
type PlayerStats struct {
	Views          EventStats      `json:"views"`
	Plays          EventStats      `json:"plays"`
	Finishes       EventStats      `json:"finishes"`
	Clicks         EventStats      `json:"clicks"`
	Conversions    EventStats      `json:"conversions"`
	PlayRate       PlayRate        `json:"playRate"`
	ConversionRate ConversionRate  `json:"conversionRate"`
	Engagement     EngagementStats `json:"engagement_stats"`
}
