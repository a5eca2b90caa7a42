package importing

import (
	"bytes"
	"context"
	"database/sql"
	"io"
	"math"
	"strings"
	"time"

	"github.com/metrifypremium/metrify-api/infrastructure/database/postgres"
	"github.com/metrifypremium/metrify-api/infrastructure/repository"
	"github.com/metrifypremium/metrify-api/infrastructure/spreadsheet"
	"github.com/metrifypremium/metrify-api/internal/config"
	"github.com/metrifypremium/metrify-api/internal/domain"
	"github.com/metrifypremium/metrify-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Colunas do export de vendas do Mercado Livre.
const (
	colOrderNumber = "N.º de venda"
	colSaleDate    = "Data da venda"
	colSKU         = "SKU"
	colListing     = "Título do anúncio"
	colQuantity    = "Unidades"
	colRevenue     = "Receita por produtos (BRL)"
	colUnitPrice   = "Preço unitário de venda do anúncio (BRL)"
	colCommission  = "Tarifa de venda e impostos (BRL)"
)

const (
	salesSheetName = "Vendas BR"
	salesHeaderRow = 5
)

// Colunas de status consultadas para detectar venda cancelada.
var statusColumns = []string{"Status da venda", "Status", "Situação"}

// Colunas candidatas a UF do comprador, em ordem de prioridade. "Estado.1"
// aparece quando o export repete o cabeçalho "Estado" em duas colunas.
var regionColumns = []string{"Estado.1", "UF", "Estado", "Estado do comprador", "Estado do Cliente"}

type SalesImporter interface {
	Import(ctx context.Context, file io.Reader) (*domain.SalesImportSummary, error)
}

type salesImporter struct {
	conn        postgres.TxRunner
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
	reader      spreadsheet.Reader
	batchSize   int
}

func NewSalesImporter(
	conn postgres.TxRunner,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	reader spreadsheet.Reader,
	cfg config.Import,
) SalesImporter {
	return &salesImporter{
		conn:        conn,
		productRepo: productRepo,
		saleRepo:    saleRepo,
		reader:      reader,
		batchSize:   cfg.BatchSize,
	}
}

// Import processa o export de vendas do marketplace. Linhas são degradadas,
// nunca abortam o lote: venda sem SKU ou sem produto correspondente só
// incrementa o contador. Os inserts são commitados em mini-lotes para não
// segurar uma transação longa.
func (s *salesImporter) Import(ctx context.Context, file io.Reader) (*domain.SalesImportSummary, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	rows, err := s.reader.Read(bytes.NewReader(data), salesSheetName, salesHeaderRow)
	if err != nil {
		// exports antigos vêm sem a aba nomeada e sem preâmbulo
		rows, err = s.reader.Read(bytes.NewReader(data), "", 0)
		if err != nil {
			return nil, err
		}
	}

	if len(rows) == 0 {
		return nil, ErrUnexpectedFormat
	}

	if _, ok := rows[0][colOrderNumber]; !ok {
		return nil, ErrUnexpectedFormat
	}

	bySKU, byName, err := s.productIndex()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	summary := &domain.SalesImportSummary{
		BatchID:   utils.NewImportBatchID(now),
		StartedAt: now,
	}

	logrus.WithField("lote", summary.BatchID).Infof("Iniciando importação de %d linhas de vendas", len(rows))

	pending := make([]*domain.Sale, 0, s.batchSize)

	flush := func() error {
		if len(pending) == 0 {
			return nil
		}

		chunk := pending
		pending = make([]*domain.Sale, 0, s.batchSize)

		return s.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
			if err := s.saleRepo.InsertBatch(tx, chunk); err != nil {
				return err
			}

			for _, sale := range chunk {
				if sale.Cancelled() {
					continue
				}
				if err := s.productRepo.IncrementStock(tx, sale.ProductID, -sale.Quantity); err != nil {
					return err
				}
			}

			return nil
		})
	}

	for _, row := range rows {
		orderNumber := strings.TrimSpace(row[colOrderNumber])
		if orderNumber == "" {
			// linhas de continuação de pacotes, sem número de venda
			continue
		}

		sku := strings.TrimSpace(row[colSKU])
		title := strings.TrimSpace(row[colListing])

		var product *domain.Product
		if sku != "" {
			product = bySKU[sku]
		} else if title != "" {
			product = byName[title]
		}

		if sku == "" && product == nil {
			summary.NoSKU++
			continue
		}

		if product == nil {
			summary.NoProduct++
			continue
		}

		sale := s.buildSale(row, product, orderNumber, summary.BatchID)

		if sale.Cancelled() {
			summary.Cancelled++
		} else {
			summary.Imported++
		}

		pending = append(pending, sale)
		if len(pending) >= s.batchSize {
			if err := flush(); err != nil {
				return nil, err
			}
		}
	}

	if err := flush(); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"lote":        summary.BatchID,
		"importadas":  summary.Imported,
		"canceladas":  summary.Cancelled,
		"sem_sku":     summary.NoSKU,
		"sem_produto": summary.NoProduct,
	}).Info("Importação de vendas concluída")

	return summary, nil
}

func (s *salesImporter) buildSale(row spreadsheet.Row, product *domain.Product, orderNumber, batchID string) *domain.Sale {
	quantity := ParseInt(row[colQuantity])
	revenue := ParseFloat(row[colRevenue])

	if revenue <= 0 || hasCancelledStatus(row) {
		revenue = 0
	}

	unitPrice := 0.0
	switch {
	case revenue > 0 && quantity > 0:
		unitPrice = revenue / float64(quantity)
	case ParseFloat(row[colUnitPrice]) > 0:
		unitPrice = ParseFloat(row[colUnitPrice])
	default:
		unitPrice = product.SuggestedPrice
	}

	commission := math.Abs(ParseFloat(row[colCommission]))
	totalCost := product.UnitCost * float64(quantity)
	margin := revenue - commission - totalCost

	var saleDate *string
	if parsed := ParseSaleDate(row[colSaleDate]); parsed != nil {
		iso := parsed.Format("2006-01-02T15:04:05")
		saleDate = &iso
	}

	return &domain.Sale{
		ProductID:     product.ID,
		SaleDate:      saleDate,
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		GrossRevenue:  revenue,
		Commission:    commission,
		TotalCost:     totalCost,
		Margin:        margin,
		Origin:        domain.SaleOriginMercadoLivre,
		OrderNumber:   orderNumber,
		ImportBatchID: &batchID,
		RegionCode:    regionCode(row),
	}
}

// productIndex indexa o catálogo por SKU e por nome, para resolver produto
// por linha sem uma consulta por linha.
func (s *salesImporter) productIndex() (map[string]*domain.Product, map[string]*domain.Product, error) {
	products, err := s.productRepo.List()
	if err != nil {
		return nil, nil, err
	}

	bySKU := make(map[string]*domain.Product, len(products))
	byName := make(map[string]*domain.Product, len(products))
	for _, product := range products {
		if product.SKU != nil && *product.SKU != "" {
			bySKU[*product.SKU] = product
		}
		if product.Name != "" {
			byName[product.Name] = product
		}
	}

	return bySKU, byName, nil
}

func hasCancelledStatus(row spreadsheet.Row) bool {
	for _, column := range statusColumns {
		if strings.Contains(strings.ToLower(row[column]), "cancelad") {
			return true
		}
	}
	return false
}

// regionCode resolve a UF do comprador pela primeira coluna candidata
// preenchida. Valor não reconhecido vira nil, sem tentar a próxima coluna.
func regionCode(row spreadsheet.Row) *string {
	for _, column := range regionColumns {
		if value, ok := row[column]; ok && strings.TrimSpace(value) != "" {
			return NormalizeUF(value)
		}
	}
	return nil
}
