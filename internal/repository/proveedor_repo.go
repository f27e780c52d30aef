package repository

import (
	"context"

	"github.com/UNIANDES-202515-PROYECTO-II-G17-BACKEND/ms-compras/internal/dto"
	"github.com/UNIANDES-202515-PROYECTO-II-G17-BACKEND/ms-compras/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProveedorRepository interface {
	Create(ctx context.Context, p *model.Proveedor) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Proveedor, error)
	// FindByDocumentoPais looks up the uniqueness key; excludeID skips one
	// supplier (uuid.Nil to disable) so updates can ignore themselves.
	FindByDocumentoPais(ctx context.Context, documento, pais string, excludeID uuid.UUID) (*model.Proveedor, error)
	List(ctx context.Context, filter dto.ProveedorFilter) ([]model.Proveedor, int64, error)
	Update(ctx context.Context, p *model.Proveedor) error
	Delete(ctx context.Context, id uuid.UUID) error
	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type proveedorRepo struct{ db *gorm.DB }

func NewProveedorRepository(db *gorm.DB) ProveedorRepository { return &proveedorRepo{db: db} }

func (r *proveedorRepo) DB() *gorm.DB { return r.db }

func (r *proveedorRepo) Create(ctx context.Context, p *model.Proveedor) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *proveedorRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Proveedor, error) {
	var p model.Proveedor
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *proveedorRepo) FindByDocumentoPais(ctx context.Context, documento, pais string, excludeID uuid.UUID) (*model.Proveedor, error) {
	q := r.db.WithContext(ctx).Where("documento = ? AND pais = ?", documento, pais)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}
	var p model.Proveedor
	if err := q.First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *proveedorRepo) List(ctx context.Context, filter dto.ProveedorFilter) ([]model.Proveedor, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Proveedor{})

	if filter.Q != "" {
		like := "%" + filter.Q + "%"
		q = q.Where("nombre ILIKE ? OR documento ILIKE ?", like, like)
	}
	if filter.Pais != "" {
		q = q.Where("pais = ?", filter.Pais)
	}
	if filter.Activo != nil {
		q = q.Where("activo = ?", *filter.Activo)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var proveedores []model.Proveedor
	err := q.Order("nombre ASC").
		Offset(filter.Offset).Limit(filter.Limit).
		Find(&proveedores).Error
	return proveedores, total, err
}

func (r *proveedorRepo) Update(ctx context.Context, p *model.Proveedor) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// Delete removes the supplier; catalog rows go with it via ON DELETE CASCADE.
// The service guarantees no ordenes reference the supplier before calling.
func (r *proveedorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Proveedor{}, "id = ?", id).Error
}
