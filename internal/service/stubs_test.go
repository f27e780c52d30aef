package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/UNIANDES-202515-PROYECTO-II-G17-BACKEND/ms-compras/internal/dto"
	"github.com/UNIANDES-202515-PROYECTO-II-G17-BACKEND/ms-compras/internal/model"
	"github.com/UNIANDES-202515-PROYECTO-II-G17-BACKEND/ms-compras/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ── In-memory ProveedorRepository stub ───────────────────────────────────────

type stubProveedorRepo struct {
	proveedores map[uuid.UUID]*model.Proveedor
}

func newStubProveedorRepo() *stubProveedorRepo {
	return &stubProveedorRepo{proveedores: make(map[uuid.UUID]*model.Proveedor)}
}

func (r *stubProveedorRepo) Create(_ context.Context, p *model.Proveedor) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	for _, existing := range r.proveedores {
		if existing.Documento == p.Documento && existing.Pais == p.Pais {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_proveedor_documento_pais"}
		}
	}
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	r.proveedores[p.ID] = p
	return nil
}

func (r *stubProveedorRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Proveedor, error) {
	p, ok := r.proveedores[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProveedorRepo) FindByDocumentoPais(_ context.Context, documento, pais string, excludeID uuid.UUID) (*model.Proveedor, error) {
	for _, p := range r.proveedores {
		if p.ID != excludeID && p.Documento == documento && p.Pais == pais {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProveedorRepo) List(_ context.Context, filter dto.ProveedorFilter) ([]model.Proveedor, int64, error) {
	var matched []model.Proveedor
	for _, p := range r.proveedores {
		if filter.Q != "" &&
			!strings.Contains(strings.ToLower(p.Nombre), strings.ToLower(filter.Q)) &&
			!strings.Contains(strings.ToLower(p.Documento), strings.ToLower(filter.Q)) {
			continue
		}
		if filter.Pais != "" && p.Pais != filter.Pais {
			continue
		}
		if filter.Activo != nil && p.Activo != *filter.Activo {
			continue
		}
		matched = append(matched, *p)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Nombre < matched[j].Nombre })
	total := int64(len(matched))
	matched = paginar(matched, filter.Offset, filter.Limit)
	return matched, total, nil
}

func (r *stubProveedorRepo) Update(_ context.Context, p *model.Proveedor) error {
	r.proveedores[p.ID] = p
	return nil
}

func (r *stubProveedorRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.proveedores, id)
	return nil
}

func (r *stubProveedorRepo) DB() *gorm.DB { return nil }

var _ repository.ProveedorRepository = (*stubProveedorRepo)(nil)

// ── In-memory CatalogoRepository stub ────────────────────────────────────────

type stubCatalogoRepo struct {
	rels        []*model.ProductoProveedor
	proveedores *stubProveedorRepo // for the join in ListProveedoresPorProducto
}

func newStubCatalogoRepo(proveedores *stubProveedorRepo) *stubCatalogoRepo {
	return &stubCatalogoRepo{proveedores: proveedores}
}

func (r *stubCatalogoRepo) Upsert(_ context.Context, rel *model.ProductoProveedor) error {
	for _, existing := range r.rels {
		if existing.ProveedorID == rel.ProveedorID && existing.ProductoID != rel.ProductoID &&
			existing.SKUProveedor != nil && rel.SKUProveedor != nil &&
			*existing.SKUProveedor == *rel.SKUProveedor {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_catalogo_proveedor_sku"}
		}
	}
	for i, existing := range r.rels {
		if existing.ProveedorID == rel.ProveedorID && existing.ProductoID == rel.ProductoID {
			r.rels[i] = rel
			return nil
		}
	}
	r.rels = append(r.rels, rel)
	return nil
}

func (r *stubCatalogoRepo) Find(_ context.Context, proveedorID, productoID uuid.UUID) (*model.ProductoProveedor, error) {
	for _, rel := range r.rels {
		if rel.ProveedorID == proveedorID && rel.ProductoID == productoID {
			return rel, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCatalogoRepo) FindPorProveedorYProductos(_ context.Context, proveedorID uuid.UUID, productoIDs []uuid.UUID) ([]model.ProductoProveedor, error) {
	buscados := make(map[uuid.UUID]bool, len(productoIDs))
	for _, id := range productoIDs {
		buscados[id] = true
	}
	var out []model.ProductoProveedor
	for _, rel := range r.rels {
		if rel.ProveedorID == proveedorID && buscados[rel.ProductoID] {
			out = append(out, *rel)
		}
	}
	return out, nil
}

func (r *stubCatalogoRepo) ListPorProveedor(_ context.Context, proveedorID uuid.UUID, filter dto.CatalogoFilter) ([]model.ProductoProveedor, error) {
	var out []model.ProductoProveedor
	for _, rel := range r.rels {
		if rel.ProveedorID != proveedorID {
			continue
		}
		if filter.Activo != nil && rel.Activo != *filter.Activo {
			continue
		}
		out = append(out, *rel)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ProductoID.String() < out[j].ProductoID.String()
	})
	return out, nil
}

func (r *stubCatalogoRepo) ListProveedoresPorProducto(_ context.Context, productoID uuid.UUID, filter dto.ProveedoresPorProductoFilter) ([]model.ProductoProveedor, error) {
	var out []model.ProductoProveedor
	for _, rel := range r.rels {
		if rel.ProductoID != productoID {
			continue
		}
		prov, ok := r.proveedores.proveedores[rel.ProveedorID]
		if !ok {
			continue
		}
		if filter.ActivoRelacion != nil && rel.Activo != *filter.ActivoRelacion {
			continue
		}
		if filter.ActivoProveedor != nil && prov.Activo != *filter.ActivoProveedor {
			continue
		}
		copia := *rel
		copia.Proveedor = prov
		out = append(out, copia)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Proveedor.Nombre < out[j].Proveedor.Nombre })
	out = paginar(out, filter.Offset, filter.Limit)
	return out, nil
}

func (r *stubCatalogoRepo) Delete(_ context.Context, proveedorID, productoID uuid.UUID) error {
	for i, rel := range r.rels {
		if rel.ProveedorID == proveedorID && rel.ProductoID == productoID {
			r.rels = append(r.rels[:i], r.rels[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

var _ repository.CatalogoRepository = (*stubCatalogoRepo)(nil)

// ── In-memory OrdenCompraRepository stub ─────────────────────────────────────

type stubOrdenRepo struct {
	ordenes map[uuid.UUID]*model.OrdenCompra
	reloj   time.Time
}

func newStubOrdenRepo() *stubOrdenRepo {
	return &stubOrdenRepo{
		ordenes: make(map[uuid.UUID]*model.OrdenCompra),
		reloj:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (r *stubOrdenRepo) Create(_ context.Context, _ *gorm.DB, oc *model.OrdenCompra) error {
	for _, existing := range r.ordenes {
		if existing.Codigo == oc.Codigo {
			return &pgconn.PgError{Code: "23505", ConstraintName: "idx_ordenes_compra_codigo"}
		}
	}
	if oc.ID == uuid.Nil {
		oc.ID = uuid.New()
	}
	r.reloj = r.reloj.Add(time.Minute)
	oc.CreatedAt = r.reloj
	oc.UpdatedAt = r.reloj
	for i := range oc.Items {
		if oc.Items[i].ID == uuid.Nil {
			oc.Items[i].ID = uuid.New()
		}
		oc.Items[i].OrdenID = oc.ID
	}
	r.ordenes[oc.ID] = oc
	return nil
}

func (r *stubOrdenRepo) FindByID(_ context.Context, id uuid.UUID) (*model.OrdenCompra, error) {
	oc, ok := r.ordenes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return oc, nil
}

func (r *stubOrdenRepo) List(_ context.Context, filter dto.OrdenCompraFilter) ([]model.OrdenCompra, int64, error) {
	var matched []model.OrdenCompra
	for _, oc := range r.ordenes {
		if filter.ProveedorID != "" && oc.ProveedorID.String() != filter.ProveedorID {
			continue
		}
		if filter.Estado != "" && oc.Estado != filter.Estado {
			continue
		}
		if filter.Q != "" && !strings.Contains(strings.ToLower(oc.Codigo), strings.ToLower(filter.Q)) {
			continue
		}
		matched = append(matched, *oc)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	total := int64(len(matched))
	matched = paginar(matched, filter.Offset, filter.Limit)
	return matched, total, nil
}

func (r *stubOrdenRepo) UpdateEstado(_ context.Context, id uuid.UUID, estado string) error {
	oc, ok := r.ordenes[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	oc.Estado = estado
	return nil
}

func (r *stubOrdenRepo) Delete(_ context.Context, _ *gorm.DB, oc *model.OrdenCompra) error {
	delete(r.ordenes, oc.ID)
	return nil
}

func (r *stubOrdenRepo) CountPorProveedor(_ context.Context, proveedorID uuid.UUID) (int64, error) {
	var n int64
	for _, oc := range r.ordenes {
		if oc.ProveedorID == proveedorID {
			n++
		}
	}
	return n, nil
}

func (r *stubOrdenRepo) DB() *gorm.DB { return nil }

var _ repository.OrdenCompraRepository = (*stubOrdenRepo)(nil)

// ── shared helpers ───────────────────────────────────────────────────────────

func paginar[T any](in []T, offset, limit int) []T {
	if offset >= len(in) {
		return nil
	}
	in = in[offset:]
	if limit > 0 && limit < len(in) {
		in = in[:limit]
	}
	return in
}

// stubGeneradorCodigo always returns the same code and counts invocations.
type stubGeneradorCodigo struct {
	codigo   string
	llamadas int
}

func (g *stubGeneradorCodigo) Generar() string {
	g.llamadas++
	return g.codigo
}

func seedProveedor(repo *stubProveedorRepo, nombre, documento string, activo bool) *model.Proveedor {
	p := &model.Proveedor{
		ID:            uuid.New(),
		Nombre:        nombre,
		TipoPersona:   model.PersonaJuridica,
		Documento:     documento,
		TipoDocumento: "NIT",
		Pais:          "CO",
		Activo:        activo,
	}
	repo.proveedores[p.ID] = p
	return p
}

func seedRelacion(repo *stubCatalogoRepo, proveedorID, productoID uuid.UUID, sku *string, activo bool) *model.ProductoProveedor {
	rel := &model.ProductoProveedor{
		ProveedorID:  proveedorID,
		ProductoID:   productoID,
		SKUProveedor: sku,
		Activo:       activo,
	}
	repo.rels = append(repo.rels, rel)
	return rel
}

func seedOrden(repo *stubOrdenRepo, proveedorID uuid.UUID, codigo, estado string) *model.OrdenCompra {
	oc := &model.OrdenCompra{
		ID:          uuid.New(),
		Codigo:      codigo,
		ProveedorID: proveedorID,
		Estado:      estado,
	}
	repo.reloj = repo.reloj.Add(time.Minute)
	oc.CreatedAt = repo.reloj
	oc.UpdatedAt = repo.reloj
	repo.ordenes[oc.ID] = oc
	return oc
}
