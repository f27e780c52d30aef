package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/UNIANDES-202515-PROYECTO-II-G17-BACKEND/ms-compras/internal/dto"
	"github.com/UNIANDES-202515-PROYECTO-II-G17-BACKEND/ms-compras/internal/model"
	"github.com/UNIANDES-202515-PROYECTO-II-G17-BACKEND/ms-compras/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrdenCompraService interface {
	Crear(ctx context.Context, req dto.CrearOrdenCompraRequest) (*dto.OrdenCompraResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.OrdenCompraResponse, error)
	Listar(ctx context.Context, filter dto.OrdenCompraFilter) (*dto.OrdenCompraListResponse, error)
	MarcarEnviada(ctx context.Context, id uuid.UUID) (*dto.OrdenCompraResponse, error)
	MarcarCompleta(ctx context.Context, id uuid.UUID) (*dto.OrdenCompraResponse, error)
	Cancelar(ctx context.Context, id uuid.UUID) (*dto.OrdenCompraResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type ordenCompraService struct {
	repo          repository.OrdenCompraRepository
	proveedorRepo repository.ProveedorRepository
	catalogoRepo  repository.CatalogoRepository
	codigos       GeneradorCodigo
	limitDefecto  int
	limitMaximo   int
}

func NewOrdenCompraService(
	repo repository.OrdenCompraRepository,
	proveedorRepo repository.ProveedorRepository,
	catalogoRepo repository.CatalogoRepository,
	codigos GeneradorCodigo,
	limitDefecto, limitMaximo int,
) OrdenCompraService {
	if limitDefecto < 1 {
		limitDefecto = 50
	}
	if limitMaximo < limitDefecto {
		limitMaximo = 200
	}
	return &ordenCompraService{
		repo:          repo,
		proveedorRepo: proveedorRepo,
		catalogoRepo:  catalogoRepo,
		codigos:       codigos,
		limitDefecto:  limitDefecto,
		limitMaximo:   limitMaximo,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── Crear ─────────────────────────────────────────────────────────────────────
// Validations run in a fixed order and all complete before any write:
//   1. proveedor must exist and be active
//   2. the order must carry at least one item
//   3. every distinct producto must have a catalog row for this proveedor
//      (the row's activo flag is not consulted — any row counts)
// On success the order is persisted in ABIERTA together with its items in a
// single transaction; a store failure leaves nothing behind.

func (s *ordenCompraService) Crear(ctx context.Context, req dto.CrearOrdenCompraRequest) (*dto.OrdenCompraResponse, error) {
	proveedorID, err := uuid.Parse(req.ProveedorID)
	if err != nil {
		return nil, fmt.Errorf("proveedor_id inválido: %w", err)
	}

	// 1. Supplier gate
	prov, err := s.proveedorRepo.FindByID(ctx, proveedorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProveedorInvalido
		}
		return nil, err
	}
	if !prov.Activo {
		return nil, ErrProveedorInvalido
	}

	// 2. Non-empty order
	if len(req.Items) == 0 {
		return nil, ErrOrdenSinItems
	}

	// 3. Catalog coverage for every distinct product
	vistos := make(map[uuid.UUID]bool, len(req.Items))
	productoIDs := make([]uuid.UUID, 0, len(req.Items))
	for _, it := range req.Items {
		pid, err := uuid.Parse(it.ProductoID)
		if err != nil {
			return nil, fmt.Errorf("producto_id inválido: %w", err)
		}
		if !vistos[pid] {
			vistos[pid] = true
			productoIDs = append(productoIDs, pid)
		}
	}

	rels, err := s.catalogoRepo.FindPorProveedorYProductos(ctx, proveedorID, productoIDs)
	if err != nil {
		return nil, err
	}
	relPorProducto := make(map[uuid.UUID]*model.ProductoProveedor, len(rels))
	for i := range rels {
		relPorProducto[rels[i].ProductoID] = &rels[i]
	}
	var faltantes []uuid.UUID
	for _, pid := range productoIDs {
		if _, ok := relPorProducto[pid]; !ok {
			faltantes = append(faltantes, pid)
		}
	}
	if len(faltantes) > 0 {
		sort.Slice(faltantes, func(i, j int) bool {
			return faltantes[i].String() < faltantes[j].String()
		})
		return nil, &ProductosNoOfertadosError{ProductoIDs: faltantes}
	}

	// Generate codigo when the payload did not supply one. A collision with
	// an existing order surfaces as a uniqueness conflict on insert.
	codigo := ""
	if req.Codigo != nil {
		codigo = *req.Codigo
	}
	if codigo == "" {
		codigo = s.codigos.Generar()
	}

	// Build the item snapshot: sku_proveedor defaults from the catalog row.
	items := make([]model.ItemOrdenCompra, 0, len(req.Items))
	for _, it := range req.Items {
		pid, _ := uuid.Parse(it.ProductoID)
		sku := it.SKUProveedor
		if sku == nil {
			sku = relPorProducto[pid].SKUProveedor
		}
		items = append(items, model.ItemOrdenCompra{
			ProductoID:     pid,
			SKUProveedor:   sku,
			Cantidad:       it.Cantidad,
			PrecioUnitario: it.PrecioUnitario,
			ImpuestoPct:    it.ImpuestoPct,
			DescuentoPct:   it.DescuentoPct,
		})
	}

	subtotal, impuestos, total := CalcularTotales(items)

	var pedidoRef *uuid.UUID
	if req.PedidoRef != nil {
		ref, err := uuid.Parse(*req.PedidoRef)
		if err != nil {
			return nil, fmt.Errorf("pedido_ref inválido: %w", err)
		}
		pedidoRef = &ref
	}

	oc := model.OrdenCompra{
		Codigo:        codigo,
		ProveedorID:   proveedorID,
		PedidoRef:     pedidoRef,
		Estado:        model.EstadoAbierta,
		Subtotal:      subtotal,
		ImpuestoTotal: impuestos,
		Total:         total,
		Moneda:        req.Moneda,
		Notas:         req.Notas,
		Items:         items,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if tx == nil {
			tx = s.repo.DB()
		}
		return s.repo.Create(ctx, tx, &oc)
	})
	if txErr != nil {
		return nil, traducirUnicidad(txErr)
	}

	return mapOrden(&oc), nil
}

// ── Lecturas ──────────────────────────────────────────────────────────────────

func (s *ordenCompraService) Obtener(ctx context.Context, id uuid.UUID) (*dto.OrdenCompraResponse, error) {
	oc, err := s.buscar(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapOrden(oc), nil
}

func (s *ordenCompraService) Listar(ctx context.Context, filter dto.OrdenCompraFilter) (*dto.OrdenCompraListResponse, error) {
	if filter.Limit < 1 {
		filter.Limit = s.limitDefecto
	}
	if filter.Limit > s.limitMaximo {
		filter.Limit = s.limitMaximo
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	ordenes, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.OrdenCompraResponse, 0, len(ordenes))
	for i := range ordenes {
		data = append(data, *mapOrden(&ordenes[i]))
	}
	return &dto.OrdenCompraListResponse{
		Data:   data,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}, nil
}

// ── Transiciones de estado ────────────────────────────────────────────────────

func (s *ordenCompraService) MarcarEnviada(ctx context.Context, id uuid.UUID) (*dto.OrdenCompraResponse, error) {
	oc, err := s.buscar(ctx, id)
	if err != nil {
		return nil, err
	}
	if oc.Estado != model.EstadoAbierta && oc.Estado != model.EstadoParcial {
		return nil, fmt.Errorf("%w: %s → %s", ErrTransicionInvalida, oc.Estado, model.EstadoEnviada)
	}
	return s.transicionar(ctx, oc, model.EstadoEnviada)
}

// MarcarCompleta accepts any current state, including CANCELADA.
// TODO: confirmar con producto si debe restringirse a ABIERTA/ENVIADA/PARCIAL.
func (s *ordenCompraService) MarcarCompleta(ctx context.Context, id uuid.UUID) (*dto.OrdenCompraResponse, error) {
	oc, err := s.buscar(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.transicionar(ctx, oc, model.EstadoCompleta)
}

func (s *ordenCompraService) Cancelar(ctx context.Context, id uuid.UUID) (*dto.OrdenCompraResponse, error) {
	oc, err := s.buscar(ctx, id)
	if err != nil {
		return nil, err
	}
	if oc.Estado == model.EstadoCompleta || oc.Estado == model.EstadoCancelada {
		return nil, fmt.Errorf("%w: no puede cancelarse una orden %s", ErrTransicionInvalida, oc.Estado)
	}
	return s.transicionar(ctx, oc, model.EstadoCancelada)
}

func (s *ordenCompraService) transicionar(ctx context.Context, oc *model.OrdenCompra, estado string) (*dto.OrdenCompraResponse, error) {
	if err := s.repo.UpdateEstado(ctx, oc.ID, estado); err != nil {
		return nil, err
	}
	oc.Estado = estado
	return mapOrden(oc), nil
}

// ── Eliminar ──────────────────────────────────────────────────────────────────

// Eliminar removes the order and its items. No state guard: deletion is
// permitted regardless of the current state.
func (s *ordenCompraService) Eliminar(ctx context.Context, id uuid.UUID) error {
	oc, err := s.buscar(ctx, id)
	if err != nil {
		return err
	}
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if tx == nil {
			tx = s.repo.DB()
		}
		return s.repo.Delete(ctx, tx, oc)
	})
}

// ── helpers ───────────────────────────────────────────────────────────────────

func (s *ordenCompraService) buscar(ctx context.Context, id uuid.UUID) (*model.OrdenCompra, error) {
	oc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrdenNoEncontrada
		}
		return nil, err
	}
	return oc, nil
}

func mapOrden(oc *model.OrdenCompra) *dto.OrdenCompraResponse {
	items := make([]dto.ItemOrdenCompraResponse, 0, len(oc.Items))
	for _, it := range oc.Items {
		items = append(items, dto.ItemOrdenCompraResponse{
			ID:             it.ID.String(),
			ProductoID:     it.ProductoID.String(),
			SKUProveedor:   it.SKUProveedor,
			Cantidad:       it.Cantidad,
			PrecioUnitario: it.PrecioUnitario,
			ImpuestoPct:    it.ImpuestoPct,
			DescuentoPct:   it.DescuentoPct,
		})
	}
	var pedidoRef *string
	if oc.PedidoRef != nil {
		ref := oc.PedidoRef.String()
		pedidoRef = &ref
	}
	return &dto.OrdenCompraResponse{
		ID:            oc.ID.String(),
		Codigo:        oc.Codigo,
		ProveedorID:   oc.ProveedorID.String(),
		PedidoRef:     pedidoRef,
		Estado:        oc.Estado,
		Subtotal:      oc.Subtotal,
		ImpuestoTotal: oc.ImpuestoTotal,
		Total:         oc.Total,
		Moneda:        oc.Moneda,
		Notas:         oc.Notas,
		Items:         items,
		CreadoEn:      oc.CreatedAt.Format("2006-01-02T15:04:05Z"),
		ActualizadoEn: oc.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
