package reporting

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/aggregating"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

var topProducts = []*domain.ProductPerformance{
	{ProductName: "Notebook 15\"", Category: "Eletrônicos", Revenue: 6999.8, QuantitySold: 2, Customers: 2},
	{ProductName: "Calça Jeans", Category: "Vestuário", Revenue: 479.7, QuantitySold: 3, Customers: 3},
	{ProductName: "Livro Técnico", Category: "Livros", Revenue: 129.9, QuantitySold: 1, Customers: 1},
}

func newExporter(t *testing.T) Exporter {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockAnalyticsRepository(ctrl)
	mockRepo.EXPECT().
		TopProducts(gomock.Any(), aggregating.TopProductsLimit).
		Return(topProducts, nil).
		AnyTimes()

	return NewService(aggregating.NewService(mockRepo))
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	var buf bytes.Buffer

	err := WriteCSV(&buf, topProducts)
	assert.NoError(t, err)

	// O reparse reproduz exatamente as linhas exportadas
	parsed, err := ParseCSV(&buf)
	assert.NoError(t, err)
	assert.Equal(t, topProducts, parsed)
}

func TestWriteCSV_Header(t *testing.T) {
	var buf bytes.Buffer

	err := WriteCSV(&buf, nil)
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 1)
	assert.Equal(t, "product_name,category,revenue,quantity_sold,customers", lines[0])
}

func TestParseCSV_RejectsUnexpectedHeader(t *testing.T) {
	input := strings.NewReader("nome,receita\nLivro,10\n")

	products, err := ParseCSV(input)

	assert.Error(t, err)
	assert.Nil(t, products)
}

func TestService_ExportTopProducts_CSV(t *testing.T) {
	exporter := newExporter(t)

	content, contentType, filename, err := exporter.ExportTopProducts(context.Background(), FormatCSV)

	assert.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)
	assert.Equal(t, "sales_report.csv", filename)

	parsed, err := ParseCSV(bytes.NewReader(content))
	assert.NoError(t, err)
	assert.Equal(t, topProducts, parsed)
}

func TestService_ExportTopProducts_DefaultsToCSV(t *testing.T) {
	exporter := newExporter(t)

	_, contentType, filename, err := exporter.ExportTopProducts(context.Background(), "")

	assert.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)
	assert.Equal(t, "sales_report.csv", filename)
}

func TestService_ExportTopProducts_XLSX(t *testing.T) {
	exporter := newExporter(t)

	content, contentType, filename, err := exporter.ExportTopProducts(context.Background(), FormatXLSX)

	assert.NoError(t, err)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", contentType)
	assert.Equal(t, "sales_report.xlsx", filename)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	assert.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Top Products"}, f.GetSheetList())

	rows, err := f.GetRows("Top Products")
	assert.NoError(t, err)
	assert.Len(t, rows, len(topProducts)+1)
	assert.Equal(t, "product_name", rows[0][0])
	assert.Equal(t, "Notebook 15\"", rows[1][0])
	assert.Equal(t, "Eletrônicos", rows[1][1])
}

func TestService_ExportTopProducts_InvalidFormat(t *testing.T) {
	exporter := newExporter(t)

	content, _, _, err := exporter.ExportTopProducts(context.Background(), "pdf")

	assert.Error(t, err)
	assert.Nil(t, content)
}
