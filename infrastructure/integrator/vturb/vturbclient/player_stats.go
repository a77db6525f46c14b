package vturbclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	vturbdomain "github.com/grupogritt/metrics-sync/infrastructure/integrator/vturb/domain"
	"github.com/grupogritt/metrics-sync/pkg/httpretry"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type playerStatsRequest struct {
	PlayerStats playerStatsParams `json:"player_stats"`
}

type playerStatsParams struct {
	PlayerID  string `json:"player_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Timezone  string `json:"timezone"`
}

type playerStatsEnvelope struct {
	Stats *vturbdomain.PlayerStats `json:"stats"`
}

// MalformedResponseError indica corpo de resposta que não decodifica no
// formato esperado. É falha do player consultado, não do lote inteiro.
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("resposta do VTurb em formato inesperado: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// GetPlayerStats busca as estatísticas de um player para uma data, no fuso
// configurado. A API às vezes devolve o objeto dentro de "stats" e às vezes
// no topo do corpo; os dois formatos são aceitos.
func (c *VturbClient) GetPlayerStats(ctx context.Context, playerID string, date time.Time) (*vturbdomain.PlayerStats, error) {
	token, err := c.tokens.Token()
	if err != nil {
		return nil, fmt.Errorf("erro ao obter credencial do VTurb: %w", err)
	}

	day := date.Format(time.DateOnly)

	payload := playerStatsRequest{
		PlayerStats: playerStatsParams{
			PlayerID:  playerID,
			StartDate: day + " 00:00:00",
			EndDate:   day + " 23:59:59",
			Timezone:  c.cfg.Vturb.Timezone,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar o corpo da requisição: %w", err)
	}

	header := http.Header{}
	header.Set("Accept", "application/json")
	header.Set("Authorization", "Bearer "+token)
	header.Set("Content-Type", "application/json")

	url := fmt.Sprintf("%s/vturb/v2/players/%s/analytics_stream/player_stats", c.cfg.Vturb.BaseURL, playerID)

	resp, err := c.httpClient.Do(ctx, httpretry.Request{
		Method: http.MethodPost,
		URL:    url,
		Header: header,
		Body:   body,
	})
	if err != nil {
		return nil, err
	}

	var envelope playerStatsEnvelope
	if err := json.Unmarshal(resp.Body, &envelope); err != nil {
		logrus.WithError(err).WithField("player_id", playerID).Error("Erro ao decodificar resposta do VTurb")
		return nil, &MalformedResponseError{Err: err}
	}

	if envelope.Stats != nil {
		return envelope.Stats, nil
	}

	var stats vturbdomain.PlayerStats
	if err := json.Unmarshal(resp.Body, &stats); err != nil {
		logrus.WithError(err).WithField("player_id", playerID).Error("Erro ao decodificar resposta do VTurb")
		return nil, &MalformedResponseError{Err: err}
	}

	return &stats, nil
}
