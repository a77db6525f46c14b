package domain

import "time"

// PlayerStats é o registro canônico de engajamento diário de um player de
// vídeo do VTurb. Chave natural: (PlayerID, StatsDate).
type PlayerStats struct {
	PlayerID            string
	StatsDate           time.Time
	ExtractionTimestamp time.Time
	StartDatetime       string
	EndDatetime         string

	TotalViews              int64
	TotalUniqueDeviceViews  int64
	TotalUniqueSessionViews int64

	TotalPlays              int64
	TotalUniqueDevicePlays  int64
	TotalUniqueSessionPlays int64

	TotalFinishes              int64
	TotalUniqueDeviceFinishes  int64
	TotalUniqueSessionFinishes int64

	TotalClicks              int64
	TotalUniqueDeviceClicks  int64
	TotalUniqueSessionClicks int64

	TotalConversions              int64
	TotalUniqueDeviceConversions  int64
	TotalUniqueSessionConversions int64

	TotalAmountBRL float64
	TotalAmountUSD float64
	TotalAmountEUR float64

	OverallPlayRate       float64
	OverallConversionRate float64

	AverageWatchedTime     float64
	EngagementRate         float64
	PitchTimeRetentionRate float64
}
