package usecase_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/mes-pro/internal/application/inventory"
	"github.com/tu-usuario/mes-pro/internal/application/usecase"
	"github.com/tu-usuario/mes-pro/internal/domain"
	"github.com/tu-usuario/mes-pro/internal/domain/entity"
	"github.com/tu-usuario/mes-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia. Implementan solo el
// comportamiento que los casos de uso ejercitan; los listados con filtros
// devuelven todo sin filtrar salvo que un test lo necesite.
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
	deleted  []string
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	m := make(map[string]*entity.Product)
	for _, p := range products {
		m[p.ID] = p
	}
	return &fakeProductRepo{products: m}
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	f.products[p.ID] = p
	return nil
}
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) Update(p *entity.Product) error {
	f.products[p.ID] = p
	return nil
}
func (f *fakeProductRepo) UpdateStock(id string, stock int) error {
	if p, ok := f.products[id]; ok {
		p.StockQuantity = stock
	}
	return nil
}
func (f *fakeProductRepo) List(_, _ string, _, _ int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}
func (f *fakeProductRepo) Count(_, _ string) (int, error) { return len(f.products), nil }
func (f *fakeProductRepo) LowStock() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		if p.StockQuantity <= p.MinStockLevel {
			out = append(out, p)
		}
	}
	return out, nil
}
func (f *fakeProductRepo) Delete(id string) error {
	delete(f.products, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeOrderRepo struct {
	orders        map[string]*entity.ManufacturingOrder
	byProduct     map[string]int
	createErrs    []error // errores a devolver en las primeras llamadas a Create
	createCalls   int
	createdOrders []*entity.ManufacturingOrder
	lastNumber    string
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders:    make(map[string]*entity.ManufacturingOrder),
		byProduct: make(map[string]int),
	}
}

func (f *fakeOrderRepo) Create(o *entity.ManufacturingOrder) error {
	f.createCalls++
	if len(f.createErrs) > 0 {
		err := f.createErrs[0]
		f.createErrs = f.createErrs[1:]
		if err != nil {
			return err
		}
	}
	cp := *o
	f.orders[o.ID] = &cp
	f.createdOrders = append(f.createdOrders, &cp)
	f.lastNumber = o.OrderNumber
	return nil
}
func (f *fakeOrderRepo) GetByID(id string) (*entity.ManufacturingOrder, error) {
	return f.orders[id], nil
}
func (f *fakeOrderRepo) LastOrderNumberFor(_ string) (string, error) {
	return f.lastNumber, nil
}
func (f *fakeOrderRepo) List(_, _ string, _, _ int) ([]*entity.ManufacturingOrder, error) {
	var out []*entity.ManufacturingOrder
	for _, o := range f.orders {
		out = append(out, o)
	}
	return out, nil
}
func (f *fakeOrderRepo) Count(_, _ string) (int, error) { return len(f.orders), nil }
func (f *fakeOrderRepo) CountByProduct(productID string) (int, error) {
	return f.byProduct[productID], nil
}
func (f *fakeOrderRepo) Update(o *entity.ManufacturingOrder) error {
	f.orders[o.ID] = o
	return nil
}
func (f *fakeOrderRepo) Delete(id string) error {
	delete(f.orders, id)
	return nil
}

type fakeWorkOrderRepo struct {
	workOrders  map[string]*entity.WorkOrder
	createErrs  []error // errores a devolver en las primeras llamadas a Create
	createCalls int
}

func newFakeWorkOrderRepo() *fakeWorkOrderRepo {
	return &fakeWorkOrderRepo{workOrders: make(map[string]*entity.WorkOrder)}
}

// Create reproduce el índice único sobre order_number: un número ya emitido
// y aún vivo rechaza la inserción con ErrDuplicate.
func (f *fakeWorkOrderRepo) Create(o *entity.WorkOrder) error {
	f.createCalls++
	if len(f.createErrs) > 0 {
		err := f.createErrs[0]
		f.createErrs = f.createErrs[1:]
		if err != nil {
			return err
		}
	}
	for _, existing := range f.workOrders {
		if existing.OrderNumber == o.OrderNumber {
			return domain.ErrDuplicate
		}
	}
	cp := *o
	f.workOrders[o.ID] = &cp
	return nil
}
func (f *fakeWorkOrderRepo) GetByID(id string) (*entity.WorkOrder, error) {
	return f.workOrders[id], nil
}
func (f *fakeWorkOrderRepo) LastOrderNumber() (string, error) {
	var last string
	for _, o := range f.workOrders {
		if o.OrderNumber > last {
			last = o.OrderNumber
		}
	}
	return last, nil
}
func (f *fakeWorkOrderRepo) List(_, _ string, _, _ int) ([]*entity.WorkOrder, error) {
	var out []*entity.WorkOrder
	for _, o := range f.workOrders {
		out = append(out, o)
	}
	return out, nil
}
func (f *fakeWorkOrderRepo) Count(_, _ string) (int, error) { return len(f.workOrders), nil }
func (f *fakeWorkOrderRepo) ListByManufacturingOrder(moID string) ([]*entity.WorkOrder, error) {
	var out []*entity.WorkOrder
	for _, o := range f.workOrders {
		if o.ManufacturingOrderID == moID {
			out = append(out, o)
		}
	}
	return out, nil
}
func (f *fakeWorkOrderRepo) Update(o *entity.WorkOrder) error {
	f.workOrders[o.ID] = o
	return nil
}
func (f *fakeWorkOrderRepo) Delete(id string) error {
	delete(f.workOrders, id)
	return nil
}

type fakeStockItemRepo struct {
	items map[string]*entity.StockItem // clave: product_code
}

func newFakeStockItemRepo() *fakeStockItemRepo {
	return &fakeStockItemRepo{items: make(map[string]*entity.StockItem)}
}

func (f *fakeStockItemRepo) Create(item *entity.StockItem) error {
	f.items[item.ProductCode] = item
	return nil
}
func (f *fakeStockItemRepo) SyncByProductCode(code, name string, stock int, at time.Time) error {
	if item, ok := f.items[code]; ok {
		item.ProductName = name
		item.CurrentStock = stock
		item.LastUpdated = at
	}
	return nil
}
func (f *fakeStockItemRepo) DeleteByProductCode(code string) error {
	delete(f.items, code)
	return nil
}
func (f *fakeStockItemRepo) List(_ string, _, _ int) ([]*entity.StockItem, error) {
	var out []*entity.StockItem
	for _, i := range f.items {
		out = append(out, i)
	}
	return out, nil
}
func (f *fakeStockItemRepo) Count(_ string) (int, error) { return len(f.items), nil }

type fakeStockMovementRepo struct {
	movements []*entity.StockMovement
}

func (f *fakeStockMovementRepo) Create(m *entity.StockMovement) error {
	f.movements = append(f.movements, m)
	return nil
}
func (f *fakeStockMovementRepo) List(_, _ string, _, _ int) ([]*entity.StockMovement, error) {
	return f.movements, nil
}
func (f *fakeStockMovementRepo) Count(_, _ string) (int, error) { return len(f.movements), nil }

type fakeBOMRepo struct {
	boms       map[string]*entity.BOM
	components map[string][]entity.BOMComponent
}

func newFakeBOMRepo() *fakeBOMRepo {
	return &fakeBOMRepo{
		boms:       make(map[string]*entity.BOM),
		components: make(map[string][]entity.BOMComponent),
	}
}

func (f *fakeBOMRepo) Create(b *entity.BOM) error {
	f.boms[b.ID] = b
	return nil
}
func (f *fakeBOMRepo) GetByID(id string) (*entity.BOM, error) {
	b := f.boms[id]
	if b != nil {
		b.Components = f.components[id]
	}
	return b, nil
}
func (f *fakeBOMRepo) GetByProduct(productID string) (*entity.BOM, error) {
	for _, b := range f.boms {
		if b.ProductID == productID {
			b.Components = f.components[b.ID]
			return b, nil
		}
	}
	return nil, nil
}
func (f *fakeBOMRepo) List(_ string, _, _ int) ([]*entity.BOM, error) {
	var out []*entity.BOM
	for _, b := range f.boms {
		out = append(out, b)
	}
	return out, nil
}
func (f *fakeBOMRepo) Count(_ string) (int, error) { return len(f.boms), nil }
func (f *fakeBOMRepo) AddComponent(c *entity.BOMComponent) error {
	f.components[c.BOMID] = append(f.components[c.BOMID], *c)
	return nil
}
func (f *fakeBOMRepo) ListComponents(bomID string) ([]entity.BOMComponent, error) {
	return f.components[bomID], nil
}
func (f *fakeBOMRepo) UpdateTotalCost(bomID string, total decimal.Decimal) error {
	if b, ok := f.boms[bomID]; ok {
		b.TotalCost = total
	}
	return nil
}
func (f *fakeBOMRepo) Delete(id string) error {
	delete(f.boms, id)
	delete(f.components, id)
	return nil
}

// fakeTxRunner ejecuta los callbacks directamente contra los fakes, sin
// transacción real. Sirve tanto para el runner de inventario como para el de BOM.
type fakeTxRunner struct {
	productRepo  *fakeProductRepo
	stockRepo    *fakeStockItemRepo
	movementRepo *fakeStockMovementRepo
	orderRepo    *fakeOrderRepo
	bomRepo      *fakeBOMRepo
}

var _ inventory.TxRunner = (*fakeTxRunner)(nil)
var _ usecase.BOMTxRunner = (*fakeTxRunner)(nil)

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	repository.ProductRepository,
	repository.StockItemRepository,
	repository.StockMovementRepository,
	repository.ManufacturingOrderRepository,
) error) error {
	return fn(f.productRepo, f.stockRepo, f.movementRepo, f.orderRepo)
}

func (f *fakeTxRunner) RunBOM(_ context.Context, fn func(repository.BOMRepository) error) error {
	return fn(f.bomRepo)
}
