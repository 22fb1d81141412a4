package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

// FiltersResponse lista os valores disponíveis para os dropdowns do
// dashboard, sempre com o sentinela "all" na frente
type FiltersResponse struct {
	Cities     []string `json:"cities"`
	Categories []string `json:"categories"`
}

func GetFilters(catalogRepo repository.CatalogRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cities, err := catalogRepo.DistinctCities(r.Context())
		if err != nil {
			logger.WithError(err).Error("filters: erro ao buscar cidades")
			apiErrors.WriteError(w, apiErrors.ErrDataSourceUnavailable, "Erro ao consultar a base de dados", nil)
			return
		}

		categories, err := catalogRepo.DistinctCategories(r.Context())
		if err != nil {
			logger.WithError(err).Error("filters: erro ao buscar categorias")
			apiErrors.WriteError(w, apiErrors.ErrDataSourceUnavailable, "Erro ao consultar a base de dados", nil)
			return
		}

		response := FiltersResponse{
			Cities:     append([]string{"all"}, cities...),
			Categories: append([]string{"all"}, categories...),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("filters: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
		}
	})
}
