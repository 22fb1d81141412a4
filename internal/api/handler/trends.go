package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/sales-analytics-api/internal/usecases/trending"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

// GetRevenueTrend retorna a série mensal de receita com média móvel
func GetRevenueTrend(service trending.TrendService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		filter := filterFromQuery(r)

		logger.WithFields(log.Fields{
			"city":     filter.City,
			"category": filter.Category,
		}).Info("trends: calculando série mensal de receita")

		points, err := service.RevenueTrend(r.Context(), filter)
		if err != nil {
			logger.WithError(err).Error("trends: erro ao calcular série mensal")
			apiErrors.WriteError(w, apiErrors.ErrDataSourceUnavailable, "Erro ao consultar a base de dados", nil)
			return
		}

		logger.WithField("months", len(points)).Info("trends: série mensal calculada")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(points); err != nil {
			logger.WithError(err).Error("trends: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
		}
	})
}

// GetCategoryTrends retorna as séries mensais por categoria (sem filtro)
func GetCategoryTrends(service trending.TrendService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		points, err := service.CategoryTrends(r.Context())
		if err != nil {
			logger.WithError(err).Error("trends: erro ao calcular séries por categoria")
			apiErrors.WriteError(w, apiErrors.ErrDataSourceUnavailable, "Erro ao consultar a base de dados", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(points); err != nil {
			logger.WithError(err).Error("trends: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
		}
	})
}
