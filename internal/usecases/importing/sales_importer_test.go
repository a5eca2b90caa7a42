package importing

import (
	"context"
	"database/sql"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/metrifypremium/metrify-api/infrastructure/database/postgres"
	"github.com/metrifypremium/metrify-api/infrastructure/repository/mocks"
	"github.com/metrifypremium/metrify-api/infrastructure/spreadsheet"
	"github.com/metrifypremium/metrify-api/internal/config"
	"github.com/metrifypremium/metrify-api/internal/domain"
)

// stubReader devolve as linhas prontas, sem passar pelo binário XLSX.
type stubReader struct {
	rows []spreadsheet.Row
	err  error
}

func (r *stubReader) Read(_ io.Reader, _ string, _ int) ([]spreadsheet.Row, error) {
	return r.rows, r.err
}

// stubTxRunner executa a função direto, sem banco; os repositórios dos
// testes são mocks e não tocam a transação.
type stubTxRunner struct{}

func (stubTxRunner) RunInTransaction(_ context.Context, fn func(*sql.Tx) error) error {
	return fn(nil)
}

func TestBuildSale(t *testing.T) {
	importer := &salesImporter{}

	product := &domain.Product{
		ID:             7,
		Name:           "Suporte de Celular",
		UnitCost:       10,
		SuggestedPrice: 49.90,
		CurrentStock:   100,
	}

	tests := []struct {
		name     string
		row      spreadsheet.Row
		validate func(t *testing.T, sale *domain.Sale)
	}{
		{
			name: "Venda normal calcula custo, margem e preço unitário",
			row: spreadsheet.Row{
				colSaleDate:   "2025-03-12T10:00:00",
				colQuantity:   "2",
				colRevenue:    "100",
				colCommission: "-5",
			},
			validate: func(t *testing.T, sale *domain.Sale) {
				assert.False(t, sale.Cancelled())
				assert.Equal(t, 2, sale.Quantity)
				assert.Equal(t, 100.0, sale.GrossRevenue)
				assert.Equal(t, 5.0, sale.Commission) // valor absoluto da tarifa
				assert.Equal(t, 20.0, sale.TotalCost)
				assert.Equal(t, 75.0, sale.Margin)
				assert.Equal(t, 50.0, sale.UnitPrice)
				require.NotNil(t, sale.SaleDate)
				assert.Equal(t, "2025-03-12T10:00:00", *sale.SaleDate)
			},
		},
		{
			name: "Receita zero marca cancelada",
			row: spreadsheet.Row{
				colQuantity: "3",
				colRevenue:  "0",
			},
			validate: func(t *testing.T, sale *domain.Sale) {
				assert.True(t, sale.Cancelled())
				assert.Equal(t, 0.0, sale.GrossRevenue)
				assert.Equal(t, 3, sale.Quantity)
			},
		},
		{
			name: "Status de cancelamento força receita a zero",
			row: spreadsheet.Row{
				colQuantity:      "1",
				colRevenue:       "59.90",
				"Status da venda": "Cancelada pelo comprador",
			},
			validate: func(t *testing.T, sale *domain.Sale) {
				assert.True(t, sale.Cancelled())
				assert.Equal(t, 0.0, sale.GrossRevenue)
			},
		},
		{
			name: "Sem receita o preço unitário cai para a coluna do anúncio",
			row: spreadsheet.Row{
				colQuantity:  "1",
				colRevenue:   "0",
				colUnitPrice: "39,90",
			},
			validate: func(t *testing.T, sale *domain.Sale) {
				assert.Equal(t, 39.90, sale.UnitPrice)
			},
		},
		{
			name: "Sem receita nem coluna de preço usa o preço sugerido",
			row: spreadsheet.Row{
				colQuantity: "1",
				colRevenue:  "0",
			},
			validate: func(t *testing.T, sale *domain.Sale) {
				assert.Equal(t, 49.90, sale.UnitPrice)
			},
		},
		{
			name: "Estado.1 tem prioridade sobre Estado",
			row: spreadsheet.Row{
				colQuantity: "1",
				colRevenue:  "10",
				"Estado":    "Rio de Janeiro",
				"Estado.1":  "São Paulo",
			},
			validate: func(t *testing.T, sale *domain.Sale) {
				require.NotNil(t, sale.RegionCode)
				assert.Equal(t, "SP", *sale.RegionCode)
			},
		},
		{
			name: "Estado não reconhecido fica nulo",
			row: spreadsheet.Row{
				colQuantity: "1",
				colRevenue:  "10",
				"Estado":    "Gotham",
			},
			validate: func(t *testing.T, sale *domain.Sale) {
				assert.Nil(t, sale.RegionCode)
			},
		},
		{
			name: "Data não interpretável fica nula",
			row: spreadsheet.Row{
				colSaleDate: "sem data",
				colQuantity: "1",
				colRevenue:  "10",
			},
			validate: func(t *testing.T, sale *domain.Sale) {
				assert.Nil(t, sale.SaleDate)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sale := importer.buildSale(tt.row, product, "2000001", "lote-teste")
			assert.Equal(t, int64(7), sale.ProductID)
			assert.Equal(t, domain.SaleOriginMercadoLivre, sale.Origin)
			assert.Equal(t, "2000001", sale.OrderNumber)
			require.NotNil(t, sale.ImportBatchID)
			assert.Equal(t, "lote-teste", *sale.ImportBatchID)
			tt.validate(t, sale)
		})
	}
}

func TestImportSales(t *testing.T) {
	sku := "SKU-7"
	product := &domain.Product{
		ID:             7,
		Name:           "Suporte de Celular",
		SKU:            &sku,
		UnitCost:       10,
		SuggestedPrice: 49.90,
		CurrentStock:   100,
	}

	run := func(t *testing.T, rows []spreadsheet.Row, setup func(productRepo *mocks.MockProductRepository, saleRepo *mocks.MockSaleRepository)) (*domain.SalesImportSummary, error) {
		t.Helper()

		ctrl := gomock.NewController(t)
		productRepo := mocks.NewMockProductRepository(ctrl)
		saleRepo := mocks.NewMockSaleRepository(ctrl)
		setup(productRepo, saleRepo)

		importer := NewSalesImporter(stubTxRunner{}, productRepo, saleRepo, &stubReader{rows: rows}, config.Import{BatchSize: 50})

		return importer.Import(context.Background(), strings.NewReader(""))
	}

	t.Run("Venda cancelada persiste mas não baixa estoque", func(t *testing.T) {
		rows := []spreadsheet.Row{
			{colOrderNumber: "2000001", colSKU: "SKU-7", colQuantity: "2", colRevenue: "100", colSaleDate: "2025-03-12T10:00:00"},
			{colOrderNumber: "2000002", colSKU: "SKU-7", colQuantity: "3", colRevenue: "0"},
		}

		var inserted []*domain.Sale
		summary, err := run(t, rows, func(productRepo *mocks.MockProductRepository, saleRepo *mocks.MockSaleRepository) {
			productRepo.EXPECT().List().Return([]*domain.Product{product}, nil)
			saleRepo.EXPECT().InsertBatch(gomock.Any(), gomock.Any()).DoAndReturn(func(_ postgres.Queryer, sales []*domain.Sale) error {
				inserted = append(inserted, sales...)
				return nil
			})
			// só a venda válida baixa estoque; a cancelada não gera chamada
			productRepo.EXPECT().IncrementStock(gomock.Any(), int64(7), -2).Return(nil)
		})

		require.NoError(t, err)
		assert.Equal(t, 1, summary.Imported)
		assert.Equal(t, 1, summary.Cancelled)
		assert.Equal(t, 0, summary.NoSKU)
		assert.Equal(t, 0, summary.NoProduct)
		assert.NotEmpty(t, summary.BatchID)

		require.Len(t, inserted, 2)
		assert.Equal(t, 0.0, inserted[1].GrossRevenue)
		assert.Equal(t, 3, inserted[1].Quantity)
	})

	t.Run("Sem SKU o produto é resolvido pelo título", func(t *testing.T) {
		rows := []spreadsheet.Row{
			{colOrderNumber: "2000003", colListing: "Suporte de Celular", colQuantity: "1", colRevenue: "50"},
		}

		summary, err := run(t, rows, func(productRepo *mocks.MockProductRepository, saleRepo *mocks.MockSaleRepository) {
			productRepo.EXPECT().List().Return([]*domain.Product{product}, nil)
			saleRepo.EXPECT().InsertBatch(gomock.Any(), gomock.Any()).Return(nil)
			productRepo.EXPECT().IncrementStock(gomock.Any(), int64(7), -1).Return(nil)
		})

		require.NoError(t, err)
		assert.Equal(t, 1, summary.Imported)
		assert.Equal(t, 0, summary.NoSKU)
	})

	t.Run("Linha sem produto correspondente só incrementa o contador", func(t *testing.T) {
		rows := []spreadsheet.Row{
			{colOrderNumber: "2000004", colSKU: "SKU-INEXISTENTE", colQuantity: "1", colRevenue: "30"},
			{colOrderNumber: "2000005", colListing: "Produto Fantasma", colQuantity: "1", colRevenue: "30"},
		}

		summary, err := run(t, rows, func(productRepo *mocks.MockProductRepository, saleRepo *mocks.MockSaleRepository) {
			productRepo.EXPECT().List().Return([]*domain.Product{product}, nil)
		})

		require.NoError(t, err)
		assert.Equal(t, 0, summary.Imported)
		assert.Equal(t, 1, summary.NoProduct)
		assert.Equal(t, 1, summary.NoSKU)
	})

	t.Run("Planilha sem a coluna de número de venda é rejeitada", func(t *testing.T) {
		rows := []spreadsheet.Row{{"Qualquer coisa": "x"}}

		_, err := run(t, rows, func(_ *mocks.MockProductRepository, _ *mocks.MockSaleRepository) {})

		assert.ErrorIs(t, err, ErrUnexpectedFormat)
	})
}
