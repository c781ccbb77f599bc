package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/mes-pro/internal/application/dto"
	"github.com/tu-usuario/mes-pro/internal/domain"
	"github.com/tu-usuario/mes-pro/internal/domain/entity"
	"github.com/tu-usuario/mes-pro/internal/domain/manufacturing"
	"github.com/tu-usuario/mes-pro/internal/domain/repository"
)

// BOMUseCase gestión de listas de materiales. El invariante
// totalCost = Σ (cost × quantity) se mantiene recalculando dentro de la misma
// transacción que agrega el componente.
type BOMUseCase struct {
	txRunner    BOMTxRunner
	bomRepo     repository.BOMRepository
	productRepo repository.ProductRepository
}

// NewBOMUseCase construye el caso de uso.
func NewBOMUseCase(txRunner BOMTxRunner, bomRepo repository.BOMRepository, productRepo repository.ProductRepository) *BOMUseCase {
	return &BOMUseCase{txRunner: txRunner, bomRepo: bomRepo, productRepo: productRepo}
}

// Create crea un BOM para un producto terminado con sus componentes iniciales.
// Cada componente toma nombre y costo (unitPrice) de la materia prima referenciada.
func (uc *BOMUseCase) Create(ctx context.Context, in dto.CreateBOMRequest) (*dto.BOMResponse, error) {
	parent, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.bomRepo.GetByProduct(in.ProductID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	bom := &entity.BOM{
		ID:          uuid.New().String(),
		ProductID:   parent.ID,
		ProductName: parent.Name,
		ProductCode: parent.ProductCode(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, c := range in.Components {
		component, err := uc.buildComponent(bom.ID, c, now)
		if err != nil {
			return nil, err
		}
		bom.Components = append(bom.Components, *component)
	}
	bom.TotalCost = manufacturing.BOMTotalCost(bom.Components)

	err = uc.txRunner.RunBOM(ctx, func(bomRepo repository.BOMRepository) error {
		if err := bomRepo.Create(bom); err != nil {
			return err
		}
		for i := range bom.Components {
			if err := bomRepo.AddComponent(&bom.Components[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toBOMResponse(bom), nil
}

// AddComponent agrega una línea al BOM y recalcula totalCost en la misma
// transacción. ErrNotFound si el BOM o la materia prima no existen.
func (uc *BOMUseCase) AddComponent(ctx context.Context, bomID string, in dto.CreateBOMComponentRequest) (*dto.BOMResponse, error) {
	bom, err := uc.bomRepo.GetByID(bomID)
	if err != nil {
		return nil, err
	}
	if bom == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	component, err := uc.buildComponent(bomID, in, now)
	if err != nil {
		return nil, err
	}

	err = uc.txRunner.RunBOM(ctx, func(bomRepo repository.BOMRepository) error {
		if err := bomRepo.AddComponent(component); err != nil {
			return err
		}
		components, err := bomRepo.ListComponents(bomID)
		if err != nil {
			return err
		}
		bom.Components = components
		bom.TotalCost = manufacturing.BOMTotalCost(components)
		bom.UpdatedAt = now
		return bomRepo.UpdateTotalCost(bomID, bom.TotalCost)
	})
	if err != nil {
		return nil, err
	}
	return toBOMResponse(bom), nil
}

// GetByID obtiene un BOM con sus componentes.
func (uc *BOMUseCase) GetByID(id string) (*dto.BOMResponse, error) {
	bom, err := uc.bomRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if bom == nil {
		return nil, domain.ErrNotFound
	}
	return toBOMResponse(bom), nil
}

// List lista BOMs con búsqueda por nombre/código de producto y paginación.
func (uc *BOMUseCase) List(q dto.BOMListQuery) ([]dto.BOMResponse, *dto.Pagination, error) {
	q.Normalize()
	boms, err := uc.bomRepo.List(q.Search, q.Limit, q.Offset())
	if err != nil {
		return nil, nil, err
	}
	total, err := uc.bomRepo.Count(q.Search)
	if err != nil {
		return nil, nil, err
	}
	items := make([]dto.BOMResponse, 0, len(boms))
	for _, b := range boms {
		items = append(items, *toBOMResponse(b))
	}
	return items, dto.NewPagination(q.Page, q.Limit, total), nil
}

// Delete elimina el BOM y sus componentes. ErrNotFound si no existe.
func (uc *BOMUseCase) Delete(id string) error {
	bom, err := uc.bomRepo.GetByID(id)
	if err != nil {
		return err
	}
	if bom == nil {
		return domain.ErrNotFound
	}
	return uc.bomRepo.Delete(id)
}

func (uc *BOMUseCase) buildComponent(bomID string, in dto.CreateBOMComponentRequest, now time.Time) (*entity.BOMComponent, error) {
	if !in.Quantity.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	material, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNotFound
	}
	unit := in.Unit
	if unit == "" {
		unit = entity.DefaultStockUnit
	}
	return &entity.BOMComponent{
		ID:        uuid.New().String(),
		BOMID:     bomID,
		ProductID: material.ID,
		Name:      material.Name,
		Quantity:  in.Quantity,
		Unit:      unit,
		Cost:      material.UnitPrice,
		Operation: in.Operation,
		CreatedAt: now,
	}, nil
}

func toBOMResponse(b *entity.BOM) *dto.BOMResponse {
	if b == nil {
		return nil
	}
	resp := &dto.BOMResponse{
		ID:          b.ID,
		ProductID:   b.ProductID,
		ProductName: b.ProductName,
		ProductCode: b.ProductCode,
		TotalCost:   b.TotalCost,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
	for _, c := range b.Components {
		resp.Components = append(resp.Components, dto.BOMComponentResponse{
			ID:        c.ID,
			ProductID: c.ProductID,
			Name:      c.Name,
			Quantity:  c.Quantity,
			Unit:      c.Unit,
			Cost:      c.Cost,
			Operation: c.Operation,
		})
	}
	return resp
}
