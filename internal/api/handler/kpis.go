package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

// filterFromQuery monta o filtro estruturado a partir dos parâmetros de
// consulta. Valores ausentes ou "all" significam "sem filtro".
func filterFromQuery(r *http.Request) domain.SalesFilter {
	return domain.NewSalesFilter(
		r.URL.Query().Get("city"),
		r.URL.Query().Get("category"),
	)
}

// GetCategoryKPIs retorna os rollups por categoria e o resumo consolidado
// para o filtro ativo
func GetCategoryKPIs(service aggregating.KPIService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		filter := filterFromQuery(r)

		logger.WithFields(log.Fields{
			"city":     filter.City,
			"category": filter.Category,
		}).Info("kpis: calculando indicadores por categoria")

		report, err := service.CategoryKPIs(r.Context(), filter)
		if err != nil {
			logger.WithError(err).Error("kpis: erro ao calcular indicadores")
			apiErrors.WriteError(w, apiErrors.ErrDataSourceUnavailable, "Erro ao consultar a base de dados", nil)
			return
		}

		logger.WithField("categories", len(report.Categories)).Info("kpis: indicadores calculados")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("kpis: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
		}
	})
}

// GetCitySegments retorna a segmentação geográfica ordenada por receita
func GetCitySegments(service aggregating.KPIService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		filter := filterFromQuery(r)

		segments, err := service.CitySegments(r.Context(), filter)
		if err != nil {
			logger.WithError(err).Error("kpis: erro ao calcular segmentação por cidade")
			apiErrors.WriteError(w, apiErrors.ErrDataSourceUnavailable, "Erro ao consultar a base de dados", nil)
			return
		}

		logger.WithField("cities", len(segments)).Info("kpis: segmentação por cidade calculada")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(segments); err != nil {
			logger.WithError(err).Error("kpis: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
		}
	})
}
