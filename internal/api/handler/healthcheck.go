package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

// HealthcheckHandler responde a liveness e verifica o acesso à base de
// dados. Falha na base vira um erro visível e retentável (503), nunca um
// crash da aplicação.
func HealthcheckHandler(conn postgres.Conn) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if err := conn.Ping(r.Context()); err != nil {
			logger.WithError(err).Error("healthcheck: base de dados inacessível")
			apiErrors.WriteError(w, apiErrors.ErrDataSourceUnavailable, "Base de dados inacessível", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]string{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		}); err != nil {
			logger.WithError(err).Warn("healthcheck: erro ao codificar resposta")
		}
	})
}
