package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/grupogritt/metrics-sync/internal/scheduler"
	"github.com/grupogritt/metrics-sync/pkg/apiErrors"
	"github.com/grupogritt/metrics-sync/pkg/utils"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeUtmify = "utmify"
	CronJobTypeVturb  = "vturb"
	CronJobTypeAll    = "all"
)

// Modos de execução aceitos pelo disparo manual
const (
	SyncModeToday   = "today"
	SyncModeHistory = "history"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	UtmifySyncService *scheduler.UtmifySyncService
	VturbSyncService  *scheduler.VturbSyncService
}

// RunCronJob executa manualmente uma cron job específica. O modo ("today" ou
// "history") vem da query string e define a data de referência e a política
// de gravação.
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		mode := r.URL.Query().Get("mode")
		if mode == "" {
			mode = SyncModeToday
		}
		if mode != SyncModeToday && mode != SyncModeHistory {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Modo inválido. Valores aceitos: today, history", nil)
			return
		}

		// Data opcional para reprocessar um dia específico
		var date *time.Time
		if rawDate := r.URL.Query().Get("date"); rawDate != "" {
			parsed, err := utils.ParseDate(rawDate)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Data inválida. Formato esperado: YYYY-MM-DD", nil)
				return
			}
			date = parsed
		}

		switch cronType {
		case CronJobTypeUtmify:
			if services.UtmifySyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrSyncUnavailable, "Serviço de sincronização da Utmify não disponível", nil)
				return
			}
			services.UtmifySyncService.TriggerManualSync(mode, date)

		case CronJobTypeVturb:
			if services.VturbSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrSyncUnavailable, "Serviço de sincronização da VTurb não disponível", nil)
				return
			}
			services.VturbSyncService.TriggerManualSync(mode, date)

		case CronJobTypeAll:
			if services.UtmifySyncService != nil {
				services.UtmifySyncService.TriggerManualSync(mode, date)
			}
			if services.VturbSyncService != nil {
				services.VturbSyncService.TriggerManualSync(mode, date)
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: utmify, vturb, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
			"mode":    mode,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"utmify": services.UtmifySyncService.GetStatus(),
			"vturb":  services.VturbSyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
