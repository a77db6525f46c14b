package utmifyclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	utmifydomain "github.com/grupogritt/metrics-sync/infrastructure/integrator/utmify/domain"
	"github.com/grupogritt/metrics-sync/internal/domain"
	"github.com/grupogritt/metrics-sync/pkg/httpretry"
	"github.com/grupogritt/metrics-sync/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type searchObjectsRequest struct {
	Level            string          `json:"level"`
	DateRange        searchDateRange `json:"dateRange"`
	NameContains     *string         `json:"nameContains"`
	ProductNames     *string         `json:"productNames"`
	OrderBy          string          `json:"orderBy"`
	AdObjectStatuses *string         `json:"adObjectStatuses"`
	AccountStatuses  *string         `json:"accountStatuses"`
	MetaAdAccountIDs *string         `json:"metaAdAccountIds"`
	DashboardID      string          `json:"dashboardId"`
}

type searchDateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type searchObjectsResponse struct {
	Results []utmifydomain.AdObject `json:"results"`
}

// MalformedResponseError indica corpo de resposta que não decodifica no
// formato esperado. É falha da conta consultada, não do lote inteiro.
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("resposta do Utmify em formato inesperado: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// SearchAdObjects busca os objetos de anúncio de um dashboard para uma data,
// na janela do dia comercial UTC-3.
func (c *UtmifyClient) SearchAdObjects(ctx context.Context, dashboardID string, level domain.Level, date time.Time) ([]utmifydomain.AdObject, error) {
	token, err := c.tokens.Token()
	if err != nil {
		return nil, fmt.Errorf("erro ao obter credencial do Utmify: %w", err)
	}

	dateFrom, dateTo := utils.BusinessDayRange(date)

	payload := searchObjectsRequest{
		Level:       string(level),
		DateRange:   searchDateRange{From: dateFrom, To: dateTo},
		OrderBy:     "greater_profit",
		DashboardID: dashboardID,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar o corpo da requisição: %w", err)
	}

	header := http.Header{}
	header.Set("Accept", "application/json")
	header.Set("Authorization", "Bearer "+token)
	header.Set("Content-Type", "application/json; charset=UTF-8")
	header.Set("Origin", c.cfg.Utmify.Origin)
	header.Set("Referer", c.cfg.Utmify.Origin+"/")

	resp, err := c.httpClient.Do(ctx, httpretry.Request{
		Method: http.MethodPost,
		URL:    c.cfg.Utmify.BaseURL + "/orders/search-objects",
		Header: header,
		Body:   body,
	})
	if err != nil {
		return nil, err
	}

	var response searchObjectsResponse
	if err := json.Unmarshal(resp.Body, &response); err != nil {
		logrus.WithError(err).WithField("dashboard_id", dashboardID).Error("Erro ao decodificar resposta do Utmify")
		return nil, &MalformedResponseError{Err: err}
	}

	logrus.WithFields(logrus.Fields{
		"dashboard_id": dashboardID,
		"level":        level,
		"date":         date.Format(time.DateOnly),
		"results":      len(response.Results),
	}).Info("Objetos de anúncio recebidos do Utmify")

	return response.Results, nil
}
