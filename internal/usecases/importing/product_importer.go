package importing

import (
	"context"
	"database/sql"
	"io"
	"strings"

	"github.com/metrifypremium/metrify-api/infrastructure/database/postgres"
	"github.com/metrifypremium/metrify-api/infrastructure/repository"
	"github.com/metrifypremium/metrify-api/infrastructure/spreadsheet"
	"github.com/metrifypremium/metrify-api/internal/config"
	"github.com/metrifypremium/metrify-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// Colunas da planilha de catálogo.
const (
	colProductSKU   = "SKU"
	colProductName  = "Nome"
	colProductStock = "Estoque"
	colProductCost  = "Custo"
)

type ProductImporter interface {
	Import(ctx context.Context, file io.Reader) (*domain.ProductImportSummary, error)
}

type productImporter struct {
	conn        postgres.TxRunner
	productRepo repository.ProductRepository
	reader      spreadsheet.Reader
	batchSize   int
}

func NewProductImporter(
	conn postgres.TxRunner,
	productRepo repository.ProductRepository,
	reader spreadsheet.Reader,
	cfg config.Import,
) ProductImporter {
	return &productImporter{
		conn:        conn,
		productRepo: productRepo,
		reader:      reader,
		batchSize:   cfg.BatchSize,
	}
}

// Import carrega o catálogo a partir de uma planilha com colunas SKU, Nome,
// Estoque e Custo. SKU existente atualiza nome, custo e estoque atual; SKU
// novo cria o produto com preço sugerido de 1,5x o custo. Linha sem SKU é
// contada como erro e pulada.
func (s *productImporter) Import(ctx context.Context, file io.Reader) (*domain.ProductImportSummary, error) {
	rows, err := s.reader.Read(file, "", 0)
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, ErrMissingSKUColumn
	}

	if _, ok := rows[0][colProductSKU]; !ok {
		return nil, ErrMissingSKUColumn
	}

	knownSKUs, err := s.knownSKUs()
	if err != nil {
		return nil, err
	}

	summary := &domain.ProductImportSummary{Errors: make([]string, 0)}

	for start := 0; start < len(rows); start += s.batchSize {
		end := start + s.batchSize
		if end > len(rows) {
			end = len(rows)
		}
		chunk := rows[start:end]

		err := s.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
			for _, row := range chunk {
				sku := strings.TrimSpace(row[colProductSKU])
				if sku == "" {
					summary.Errors = append(summary.Errors, "Linha sem SKU")
					continue
				}

				name := strings.TrimSpace(row[colProductName])
				if name == "" {
					name = sku
				}

				stock := ParseInt(row[colProductStock])
				cost := ParseFloat(row[colProductCost])

				if err := s.productRepo.UpsertBySKU(tx, sku, name, cost, stock); err != nil {
					return err
				}

				if _, ok := knownSKUs[sku]; ok {
					summary.Updated++
				} else {
					summary.Imported++
					knownSKUs[sku] = struct{}{}
				}
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	logrus.WithFields(logrus.Fields{
		"importados":  summary.Imported,
		"atualizados": summary.Updated,
		"erros":       len(summary.Errors),
	}).Info("Importação de catálogo concluída")

	return summary, nil
}

func (s *productImporter) knownSKUs() (map[string]struct{}, error) {
	products, err := s.productRepo.List()
	if err != nil {
		return nil, err
	}

	skus := make(map[string]struct{}, len(products))
	for _, product := range products {
		if product.SKU != nil && *product.SKU != "" {
			skus[*product.SKU] = struct{}{}
		}
	}

	return skus, nil
}
