package repository

import (
	"context"

	"github.com/UNIANDES-202515-PROYECTO-II-G17-BACKEND/ms-compras/internal/dto"
	"github.com/UNIANDES-202515-PROYECTO-II-G17-BACKEND/ms-compras/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CatalogoRepository interface {
	// Upsert inserts the catalog row or, when (proveedor_id, producto_id)
	// already exists, overwrites its purchase terms.
	Upsert(ctx context.Context, rel *model.ProductoProveedor) error
	Find(ctx context.Context, proveedorID, productoID uuid.UUID) (*model.ProductoProveedor, error)
	// FindPorProveedorYProductos returns the catalog rows this supplier has
	// for any of the given product ids, regardless of the rows' activo flag.
	FindPorProveedorYProductos(ctx context.Context, proveedorID uuid.UUID, productoIDs []uuid.UUID) ([]model.ProductoProveedor, error)
	ListPorProveedor(ctx context.Context, proveedorID uuid.UUID, filter dto.CatalogoFilter) ([]model.ProductoProveedor, error)
	ListProveedoresPorProducto(ctx context.Context, productoID uuid.UUID, filter dto.ProveedoresPorProductoFilter) ([]model.ProductoProveedor, error)
	Delete(ctx context.Context, proveedorID, productoID uuid.UUID) error
}

type catalogoRepo struct{ db *gorm.DB }

func NewCatalogoRepository(db *gorm.DB) CatalogoRepository { return &catalogoRepo{db: db} }

func (r *catalogoRepo) Upsert(ctx context.Context, rel *model.ProductoProveedor) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "proveedor_id"}, {Name: "producto_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"sku_proveedor", "precio", "moneda", "lead_time_dias", "lote_minimo", "activo", "updated_at",
		}),
	}).Create(rel).Error
}

func (r *catalogoRepo) Find(ctx context.Context, proveedorID, productoID uuid.UUID) (*model.ProductoProveedor, error) {
	var rel model.ProductoProveedor
	err := r.db.WithContext(ctx).
		First(&rel, "proveedor_id = ? AND producto_id = ?", proveedorID, productoID).Error
	if err != nil {
		return nil, err
	}
	return &rel, nil
}

func (r *catalogoRepo) FindPorProveedorYProductos(ctx context.Context, proveedorID uuid.UUID, productoIDs []uuid.UUID) ([]model.ProductoProveedor, error) {
	var rels []model.ProductoProveedor
	err := r.db.WithContext(ctx).
		Where("proveedor_id = ? AND producto_id IN ?", proveedorID, productoIDs).
		Find(&rels).Error
	return rels, err
}

func (r *catalogoRepo) ListPorProveedor(ctx context.Context, proveedorID uuid.UUID, filter dto.CatalogoFilter) ([]model.ProductoProveedor, error) {
	q := r.db.WithContext(ctx).Where("proveedor_id = ?", proveedorID)
	if filter.Activo != nil {
		q = q.Where("activo = ?", *filter.Activo)
	}
	var rels []model.ProductoProveedor
	err := q.Order("producto_id ASC").Find(&rels).Error
	return rels, err
}

func (r *catalogoRepo) ListProveedoresPorProducto(ctx context.Context, productoID uuid.UUID, filter dto.ProveedoresPorProductoFilter) ([]model.ProductoProveedor, error) {
	q := r.db.WithContext(ctx).Model(&model.ProductoProveedor{}).
		Joins("JOIN proveedores ON proveedores.id = producto_proveedor.proveedor_id").
		Where("producto_proveedor.producto_id = ?", productoID).
		Preload("Proveedor")

	if filter.ActivoRelacion != nil {
		q = q.Where("producto_proveedor.activo = ?", *filter.ActivoRelacion)
	}
	if filter.ActivoProveedor != nil {
		q = q.Where("proveedores.activo = ?", *filter.ActivoProveedor)
	}

	var rels []model.ProductoProveedor
	err := q.Order("proveedores.nombre ASC").
		Offset(filter.Offset).Limit(filter.Limit).
		Find(&rels).Error
	return rels, err
}

func (r *catalogoRepo) Delete(ctx context.Context, proveedorID, productoID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Delete(&model.ProductoProveedor{}, "proveedor_id = ? AND producto_id = ?", proveedorID, productoID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
