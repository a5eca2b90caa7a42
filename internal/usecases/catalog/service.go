package catalog

import (
	"context"
	"database/sql"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/metrifypremium/metrify-api/infrastructure/database/postgres"
	"github.com/metrifypremium/metrify-api/infrastructure/repository"
	"github.com/metrifypremium/metrify-api/internal/domain"
	"github.com/metrifypremium/metrify-api/pkg/utils"
)

type CatalogService interface {
	ListProducts() ([]*domain.Product, error)
	CreateProduct(request *domain.NewProductRequest) (*domain.Product, error)
	UpdateProduct(request *domain.UpdateProductRequest) error
	DeleteProduct(id int64, cascadeSales bool) error
	AdjustStock(ctx context.Context, request *domain.StockAdjustmentRequest) (*domain.StockAdjustment, error)
	ListAdjustments(productID int64) ([]*domain.StockAdjustment, error)
}

type Service struct {
	conn           *postgres.Connection
	productRepo    repository.ProductRepository
	adjustmentRepo repository.StockAdjustmentRepository
	now            func() time.Time
}

func NewService(
	conn *postgres.Connection,
	productRepo repository.ProductRepository,
	adjustmentRepo repository.StockAdjustmentRepository,
) *Service {
	return &Service{
		conn:           conn,
		productRepo:    productRepo,
		adjustmentRepo: adjustmentRepo,
		now:            time.Now,
	}
}

func (s *Service) ListProducts() ([]*domain.Product, error) {
	return s.productRepo.List()
}

// CreateProduct cadastra um produto manualmente. SKU é opcional, mas
// quando informado precisa ser único.
func (s *Service) CreateProduct(request *domain.NewProductRequest) (*domain.Product, error) {
	if request.Name == "" {
		return nil, ErrNameRequired
	}

	if request.SKU != "" {
		existing, err := s.productRepo.GetBySKU(request.SKU)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrSKUAlreadyInUse
		}
	}

	return s.productRepo.Create(request)
}

func (s *Service) UpdateProduct(request *domain.UpdateProductRequest) error {
	product, err := s.productRepo.GetByID(request.ID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}

	if request.SKU != nil && *request.SKU != "" {
		existing, err := s.productRepo.GetBySKU(*request.SKU)
		if err != nil {
			return err
		}
		if existing != nil && existing.ID != request.ID {
			return ErrSKUAlreadyInUse
		}
	}

	return s.productRepo.Update(request)
}

func (s *Service) DeleteProduct(id int64, cascadeSales bool) error {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}

	if err := s.productRepo.Delete(id, cascadeSales); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"produto_id": id,
		"cascata":    cascadeSales,
	}).Info("produto removido")

	return nil
}

// AdjustStock registra uma entrada ou saída manual de estoque. Entradas
// com custo informado recalculam o custo unitário pela média ponderada
// entre o estoque existente e o lote que chegou; saídas mantêm o custo e
// apenas baixam a quantidade. O ajuste e o produto mudam juntos, na mesma
// transação.
func (s *Service) AdjustStock(ctx context.Context, request *domain.StockAdjustmentRequest) (*domain.StockAdjustment, error) {
	if request.Quantity <= 0 {
		return nil, ErrInvalidAdjustment
	}
	if request.Kind != domain.StockAdjustmentIn && request.Kind != domain.StockAdjustmentOut {
		return nil, ErrInvalidAdjustment
	}

	product, err := s.productRepo.GetByID(request.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	newStock := product.CurrentStock
	newCost := product.UnitCost

	if request.Kind == domain.StockAdjustmentIn {
		newStock += request.Quantity
		if request.UnitCost != nil && *request.UnitCost > 0 {
			newCost = weightedAverageCost(product.CurrentStock, product.UnitCost, request.Quantity, *request.UnitCost)
		}
	} else {
		newStock -= request.Quantity
	}

	recordedCost := newCost
	if request.Kind == domain.StockAdjustmentIn && request.UnitCost != nil && *request.UnitCost > 0 {
		recordedCost = *request.UnitCost
	}

	adjustment := &domain.StockAdjustment{
		ProductID: product.ID,
		Date:      s.now().Format("2006-01-02T15:04:05"),
		Kind:      request.Kind,
		Quantity:  request.Quantity,
		UnitCost:  &recordedCost,
		Note:      request.Note,
	}

	err = s.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := s.productRepo.SetCostAndStock(tx, product.ID, newCost, newStock); err != nil {
			return err
		}

		id, err := s.adjustmentRepo.Insert(tx, adjustment)
		if err != nil {
			return err
		}
		adjustment.ID = id

		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"produto_id": product.ID,
		"tipo":       request.Kind,
		"quantidade": request.Quantity,
		"estoque":    newStock,
	}).Info("ajuste de estoque registrado")

	return adjustment, nil
}

func (s *Service) ListAdjustments(productID int64) ([]*domain.StockAdjustment, error) {
	return s.adjustmentRepo.ListByProduct(productID)
}

// weightedAverageCost pondera o custo atual do estoque com o custo do
// lote que entrou. Estoque zerado ou negativo adota o custo novo direto.
func weightedAverageCost(currentStock int, currentCost float64, incomingQty int, incomingCost float64) float64 {
	if currentStock <= 0 {
		return utils.RoundWithTwoDecimalPlace(incomingCost)
	}

	total := float64(currentStock)*currentCost + float64(incomingQty)*incomingCost
	return utils.RoundWithTwoDecimalPlace(total / float64(currentStock+incomingQty))
}
