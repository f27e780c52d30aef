package repository

import (
	"context"

	"github.com/UNIANDES-202515-PROYECTO-II-G17-BACKEND/ms-compras/internal/dto"
	"github.com/UNIANDES-202515-PROYECTO-II-G17-BACKEND/ms-compras/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrdenCompraRepository interface {
	// Create persists the order together with its attached items inside the
	// given transaction. Callers own the transaction boundary.
	Create(ctx context.Context, tx *gorm.DB, oc *model.OrdenCompra) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.OrdenCompra, error)
	List(ctx context.Context, filter dto.OrdenCompraFilter) ([]model.OrdenCompra, int64, error)
	UpdateEstado(ctx context.Context, id uuid.UUID, estado string) error
	Delete(ctx context.Context, tx *gorm.DB, oc *model.OrdenCompra) error
	CountPorProveedor(ctx context.Context, proveedorID uuid.UUID) (int64, error)
	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type ordenRepo struct{ db *gorm.DB }

func NewOrdenCompraRepository(db *gorm.DB) OrdenCompraRepository { return &ordenRepo{db: db} }

func (r *ordenRepo) DB() *gorm.DB { return r.db }

func (r *ordenRepo) Create(ctx context.Context, tx *gorm.DB, oc *model.OrdenCompra) error {
	return tx.WithContext(ctx).Create(oc).Error
}

func (r *ordenRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.OrdenCompra, error) {
	var oc model.OrdenCompra
	err := r.db.WithContext(ctx).Preload("Items").First(&oc, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &oc, nil
}

func (r *ordenRepo) List(ctx context.Context, filter dto.OrdenCompraFilter) ([]model.OrdenCompra, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.OrdenCompra{})

	if filter.ProveedorID != "" {
		q = q.Where("proveedor_id = ?", filter.ProveedorID)
	}
	if filter.Estado != "" {
		q = q.Where("estado = ?", filter.Estado)
	}
	if filter.Q != "" {
		q = q.Where("codigo ILIKE ?", "%"+filter.Q+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ordenes []model.OrdenCompra
	err := q.Preload("Items").
		Order("created_at DESC").
		Offset(filter.Offset).Limit(filter.Limit).
		Find(&ordenes).Error
	return ordenes, total, err
}

func (r *ordenRepo) UpdateEstado(ctx context.Context, id uuid.UUID, estado string) error {
	return r.db.WithContext(ctx).Model(&model.OrdenCompra{}).
		Where("id = ?", id).Update("estado", estado).Error
}

// Delete removes the order; items go with it via ON DELETE CASCADE, with an
// explicit association select so the cascade also works on stores that lack
// FK-level cascades.
func (r *ordenRepo) Delete(ctx context.Context, tx *gorm.DB, oc *model.OrdenCompra) error {
	return tx.WithContext(ctx).Select("Items").Delete(oc).Error
}

func (r *ordenRepo) CountPorProveedor(ctx context.Context, proveedorID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.OrdenCompra{}).
		Where("proveedor_id = ?", proveedorID).Count(&n).Error
	return n, err
}
