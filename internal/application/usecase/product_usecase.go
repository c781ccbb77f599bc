package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/mes-pro/internal/application/dto"
	appinventory "github.com/tu-usuario/mes-pro/internal/application/inventory"
	"github.com/tu-usuario/mes-pro/internal/domain"
	"github.com/tu-usuario/mes-pro/internal/domain/entity"
	"github.com/tu-usuario/mes-pro/internal/domain/repository"
)

// ProductUseCase CRUD de productos más la sincronización del StockItem espejo.
// Cada operación que toca producto y espejo corre dentro de una transacción.
type ProductUseCase struct {
	txRunner    appinventory.TxRunner
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(txRunner appinventory.TxRunner, productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{txRunner: txRunner, productRepo: productRepo}
}

// Create crea el producto y su StockItem espejo (PROD-CODE-{id}, unidad "pcs",
// bodega por defecto) en una sola transacción.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.StockQuantity < 0 || in.MinStockLevel < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Category:      in.Category,
		Description:   in.Description,
		UnitPrice:     in.UnitPrice,
		StockQuantity: in.StockQuantity,
		MinStockLevel: in.MinStockLevel,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		stockRepo repository.StockItemRepository,
		_ repository.StockMovementRepository,
		_ repository.ManufacturingOrderRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		return stockRepo.Create(&entity.StockItem{
			ID:           uuid.New().String(),
			ProductName:  product.Name,
			ProductCode:  product.ProductCode(),
			CurrentStock: product.StockQuantity,
			Unit:         entity.DefaultStockUnit,
			Location:     entity.DefaultStockLocation,
			LastUpdated:  now,
		})
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List lista productos con búsqueda insensible a mayúsculas sobre nombre y
// descripción, filtro opcional por categoría y paginación.
func (uc *ProductUseCase) List(q dto.ProductListQuery) ([]dto.ProductResponse, *dto.Pagination, error) {
	q.Normalize()
	products, err := uc.productRepo.List(q.Search, q.Category, q.Limit, q.Offset())
	if err != nil {
		return nil, nil, err
	}
	total, err := uc.productRepo.Count(q.Search, q.Category)
	if err != nil {
		return nil, nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return items, dto.NewPagination(q.Page, q.Limit, total), nil
}

// Update actualiza el producto y propaga nombre y stock al StockItem espejo
// en la misma transacción.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	var product *entity.Product
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		stockRepo repository.StockItemRepository,
		_ repository.StockMovementRepository,
		_ repository.ManufacturingOrderRepository,
	) error {
		var err error
		product, err = productRepo.GetByID(id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if in.Name != nil {
			product.Name = *in.Name
		}
		if in.Category != nil {
			product.Category = *in.Category
		}
		if in.Description != nil {
			product.Description = *in.Description
		}
		if in.UnitPrice != nil {
			product.UnitPrice = *in.UnitPrice
		}
		if in.StockQuantity != nil {
			if *in.StockQuantity < 0 {
				return domain.ErrInvalidInput
			}
			product.StockQuantity = *in.StockQuantity
		}
		if in.MinStockLevel != nil {
			if *in.MinStockLevel < 0 {
				return domain.ErrInvalidInput
			}
			product.MinStockLevel = *in.MinStockLevel
		}
		product.UpdatedAt = time.Now()
		if err := productRepo.Update(product); err != nil {
			return err
		}
		return stockRepo.SyncByProductCode(product.ProductCode(), product.Name, product.StockQuantity, product.UpdatedAt)
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete rechaza con ErrProductInUse si alguna orden de fabricación referencia
// el producto; si no, elimina producto y espejo en la misma transacción.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		stockRepo repository.StockItemRepository,
		_ repository.StockMovementRepository,
		orderRepo repository.ManufacturingOrderRepository,
	) error {
		product, err := productRepo.GetByID(id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		refs, err := orderRepo.CountByProduct(id)
		if err != nil {
			return err
		}
		if refs > 0 {
			return domain.ErrProductInUse
		}
		if err := productRepo.Delete(id); err != nil {
			return err
		}
		return stockRepo.DeleteByProductCode(product.ProductCode())
	})
}

// LowStock devuelve los productos en o por debajo de su propio mínimo,
// ordenados ascendente por stock.
func (uc *ProductUseCase) LowStock() ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.LowStock()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Category:      p.Category,
		Description:   p.Description,
		UnitPrice:     p.UnitPrice,
		StockQuantity: p.StockQuantity,
		MinStockLevel: p.MinStockLevel,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
