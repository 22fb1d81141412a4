package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/vfg2006/sales-analytics-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

// GetTopProducts retorna os 20 produtos com maior receita
func GetTopProducts(service aggregating.KPIService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		products, err := service.TopProducts(r.Context())
		if err != nil {
			logger.WithError(err).Error("products: erro ao buscar top produtos")
			apiErrors.WriteError(w, apiErrors.ErrDataSourceUnavailable, "Erro ao consultar a base de dados", nil)
			return
		}

		logger.WithField("products", len(products)).Info("products: top produtos recuperados")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(products); err != nil {
			logger.WithError(err).Error("products: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
		}
	})
}

// ExportTopProducts baixa o relatório de top produtos em CSV ou XLSX
func ExportTopProducts(exporter reporting.Exporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		format := r.URL.Query().Get("format")
		if format == "" {
			format = reporting.FormatCSV
		}

		content, contentType, filename, err := exporter.ExportTopProducts(r.Context(), format)
		if err != nil {
			if format != reporting.FormatCSV && format != reporting.FormatXLSX {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat,
					"Formato inválido. Valores aceitos: csv, xlsx", nil)
				return
			}

			logger.WithError(err).Error("products: erro ao exportar relatório")
			apiErrors.WriteError(w, apiErrors.ErrDataSourceUnavailable, "Erro ao gerar o relatório", nil)
			return
		}

		logger.WithFields(log.Fields{
			"format": format,
			"bytes":  len(content),
		}).Info("products: relatório exportado")

		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		if _, err := w.Write(content); err != nil {
			logger.WithError(err).Warn("products: erro ao enviar o relatório")
		}
	})
}
