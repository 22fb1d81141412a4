package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

// CacheRefresher é implementado pelos serviços decorados com cache.
// Serviços sem cache simplesmente não entram na lista.
type CacheRefresher interface {
	Refresh()
}

// RefreshCache descarta os resultados memoizados de todos os serviços
// (o botão "Refresh Data" do dashboard). As próximas consultas voltam à
// base de dados.
func RefreshCache(refreshers ...CacheRefresher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		for _, refresher := range refreshers {
			refresher.Refresh()
		}

		logger.WithField("services", len(refreshers)).Info("cache: memoização descartada")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]string{
			"message": "Cache descartado com sucesso",
		}); err != nil {
			logger.WithError(err).Warn("cache: erro ao codificar resposta")
		}
	})
}
