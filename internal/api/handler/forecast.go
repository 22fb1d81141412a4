package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/vfg2006/sales-analytics-api/internal/usecases/forecasting"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

// GetForecast retorna a previsão de receita para um (mês, ano). O ano é
// apenas rótulo: a previsão depende só do mês.
func GetForecast(service forecasting.Forecaster) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		month, err := strconv.Atoi(r.URL.Query().Get("month"))
		if err != nil || month < 1 || month > 12 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Mês inválido. Informe um número de 1 a 12", nil)
			return
		}

		year, err := strconv.Atoi(r.URL.Query().Get("year"))
		if err != nil || year < 1000 || year > 9999 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Ano inválido. Use formato de quatro dígitos (ex: 2025)", nil)
			return
		}

		logger.WithFields(log.Fields{
			"month": month,
			"year":  year,
		}).Info("forecast: gerando previsão de receita")

		result, err := service.Predict(month, year)
		if err != nil {
			if errors.Is(err, forecasting.ErrModelUnavailable) {
				apiErrors.WriteError(w, apiErrors.ErrModelUnavailable,
					"Modelo de previsão indisponível. Treine o modelo antes de usar o forecast.", nil)
				return
			}

			logger.WithError(err).Error("forecast: erro ao gerar previsão")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("forecast: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
		}
	})
}

// GetYearForecast retorna a previsão dos 12 meses de um ano, para o gráfico
func GetYearForecast(service forecasting.Forecaster) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		year, err := strconv.Atoi(r.URL.Query().Get("year"))
		if err != nil || year < 1000 || year > 9999 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Ano inválido. Use formato de quatro dígitos (ex: 2025)", nil)
			return
		}

		results, err := service.PredictYear(year)
		if err != nil {
			if errors.Is(err, forecasting.ErrModelUnavailable) {
				apiErrors.WriteError(w, apiErrors.ErrModelUnavailable,
					"Modelo de previsão indisponível. Treine o modelo antes de usar o forecast.", nil)
				return
			}

			logger.WithError(err).Error("forecast: erro ao gerar previsão anual")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		logger.WithField("year", year).Info("forecast: previsão anual gerada")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(results); err != nil {
			logger.WithError(err).Error("forecast: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
		}
	})
}
