// Package reporting serializa o agregado de top produtos para download
// (CSV e XLSX), com os mesmos nomes de coluna do agregado em memória.
package reporting

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/aggregating"
	"github.com/xuri/excelize/v2"
)

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// exportColumns replica os campos de domain.ProductPerformance, na ordem
var exportColumns = []string{"product_name", "category", "revenue", "quantity_sold", "customers"}

type Exporter interface {
	// ExportTopProducts gera o relatório de top produtos no formato pedido
	// e retorna o conteúdo, o content-type e o nome de arquivo sugerido
	ExportTopProducts(ctx context.Context, format string) ([]byte, string, string, error)
}

type Service struct {
	kpiService aggregating.KPIService
}

func NewService(kpiService aggregating.KPIService) Exporter {
	return &Service{kpiService: kpiService}
}

func (s *Service) ExportTopProducts(ctx context.Context, format string) ([]byte, string, string, error) {
	products, err := s.kpiService.TopProducts(ctx)
	if err != nil {
		return nil, "", "", err
	}

	var buf bytes.Buffer
	switch format {
	case FormatCSV, "":
		if err := WriteCSV(&buf, products); err != nil {
			return nil, "", "", err
		}
		return buf.Bytes(), "text/csv", "sales_report.csv", nil
	case FormatXLSX:
		if err := WriteXLSX(&buf, products); err != nil {
			return nil, "", "", err
		}
		return buf.Bytes(),
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			"sales_report.xlsx", nil
	default:
		return nil, "", "", fmt.Errorf("formato de exportação inválido: %s", format)
	}
}

// WriteCSV grava o agregado em CSV. Valores numéricos ficam sem formatação
// de moeda, então o reparse reproduz exatamente as linhas exportadas.
func WriteCSV(w io.Writer, products []*domain.ProductPerformance) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(exportColumns); err != nil {
		return errors.Wrap(err, "erro ao gravar o cabeçalho do CSV")
	}

	for _, p := range products {
		record := []string{
			p.ProductName,
			p.Category,
			strconv.FormatFloat(p.Revenue, 'f', -1, 64),
			strconv.Itoa(p.QuantitySold),
			strconv.Itoa(p.Customers),
		}
		if err := cw.Write(record); err != nil {
			return errors.Wrap(err, "erro ao gravar linha do CSV")
		}
	}

	cw.Flush()
	return errors.Wrap(cw.Error(), "erro ao finalizar o CSV")
}

// ParseCSV reconstrói o agregado a partir de um CSV gerado por WriteCSV
func ParseCSV(r io.Reader) ([]*domain.ProductPerformance, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler o cabeçalho do CSV")
	}
	if len(header) != len(exportColumns) {
		return nil, fmt.Errorf("cabeçalho inesperado: %v", header)
	}

	products := make([]*domain.ProductPerformance, 0)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "erro ao ler linha do CSV")
		}

		revenue, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return nil, fmt.Errorf("receita inválida %q: %w", record[2], err)
		}
		quantity, err := strconv.Atoi(record[3])
		if err != nil {
			return nil, fmt.Errorf("quantidade inválida %q: %w", record[3], err)
		}
		customers, err := strconv.Atoi(record[4])
		if err != nil {
			return nil, fmt.Errorf("contagem de clientes inválida %q: %w", record[4], err)
		}

		products = append(products, &domain.ProductPerformance{
			ProductName:  record[0],
			Category:     record[1],
			Revenue:      revenue,
			QuantitySold: quantity,
			Customers:    customers,
		})
	}

	return products, nil
}

// WriteXLSX grava o agregado em planilha XLSX, uma linha por produto
func WriteXLSX(w io.Writer, products []*domain.ProductPerformance) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Top Products"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return errors.Wrap(err, "erro ao criar a planilha")
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return errors.Wrap(err, "erro ao remover a planilha padrão")
	}

	for col, name := range exportColumns {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return errors.Wrap(err, "erro ao gravar o cabeçalho da planilha")
		}
	}

	for row, p := range products {
		values := []any{p.ProductName, p.Category, p.Revenue, p.QuantitySold, p.Customers}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return errors.Wrap(err, "erro ao gravar célula da planilha")
			}
		}
	}

	return errors.Wrap(f.Write(w), "erro ao gravar a planilha")
}
