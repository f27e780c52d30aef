package service

import (
	"context"
	"errors"

	"github.com/UNIANDES-202515-PROYECTO-II-G17-BACKEND/ms-compras/internal/dto"
	"github.com/UNIANDES-202515-PROYECTO-II-G17-BACKEND/ms-compras/internal/model"
	"github.com/UNIANDES-202515-PROYECTO-II-G17-BACKEND/ms-compras/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProveedorService interface {
	Crear(ctx context.Context, req dto.CrearProveedorRequest) (*dto.ProveedorResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProveedorResponse, error)
	Listar(ctx context.Context, filter dto.ProveedorFilter) (*dto.ProveedorListResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProveedorRequest) (*dto.ProveedorResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type proveedorService struct {
	repo         repository.ProveedorRepository
	ordenRepo    repository.OrdenCompraRepository
	limitDefecto int
	limitMaximo  int
}

func NewProveedorService(repo repository.ProveedorRepository, ordenRepo repository.OrdenCompraRepository, limitDefecto, limitMaximo int) ProveedorService {
	if limitDefecto < 1 {
		limitDefecto = 50
	}
	if limitMaximo < limitDefecto {
		limitMaximo = 200
	}
	return &proveedorService{repo: repo, ordenRepo: ordenRepo, limitDefecto: limitDefecto, limitMaximo: limitMaximo}
}

func (s *proveedorService) Crear(ctx context.Context, req dto.CrearProveedorRequest) (*dto.ProveedorResponse, error) {
	// (documento, pais) must be unique — reject early with a clear conflict.
	// The unique index still covers the race between check and insert.
	if _, err := s.repo.FindByDocumentoPais(ctx, req.Documento, req.Pais, uuid.Nil); err == nil {
		return nil, ErrConflictoUnicidad
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	activo := true
	if req.Activo != nil {
		activo = *req.Activo
	}
	p := &model.Proveedor{
		Nombre:        req.Nombre,
		TipoPersona:   req.TipoPersona,
		Documento:     req.Documento,
		TipoDocumento: req.TipoDocumento,
		Pais:          req.Pais,
		Direccion:     req.Direccion,
		Telefono:      req.Telefono,
		Email:         req.Email,
		PaginaWeb:     req.PaginaWeb,
		Activo:        activo,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, traducirUnicidad(err)
	}
	return mapProveedor(p), nil
}

func (s *proveedorService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProveedorResponse, error) {
	p, err := s.buscar(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapProveedor(p), nil
}

func (s *proveedorService) Listar(ctx context.Context, filter dto.ProveedorFilter) (*dto.ProveedorListResponse, error) {
	if filter.Limit < 1 {
		filter.Limit = s.limitDefecto
	}
	if filter.Limit > s.limitMaximo {
		filter.Limit = s.limitMaximo
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	proveedores, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ProveedorResponse, 0, len(proveedores))
	for i := range proveedores {
		data = append(data, *mapProveedor(&proveedores[i]))
	}
	return &dto.ProveedorListResponse{
		Data:   data,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}, nil
}

// Actualizar applies a partial update: only fields present in the payload are
// touched, field by field against the loaded record.
func (s *proveedorService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProveedorRequest) (*dto.ProveedorResponse, error) {
	p, err := s.buscar(ctx, id)
	if err != nil {
		return nil, err
	}

	// Re-check uniqueness when the identity pair changes.
	if req.Documento != nil || req.Pais != nil {
		doc, pais := p.Documento, p.Pais
		if req.Documento != nil {
			doc = *req.Documento
		}
		if req.Pais != nil {
			pais = *req.Pais
		}
		if _, err := s.repo.FindByDocumentoPais(ctx, doc, pais, id); err == nil {
			return nil, ErrConflictoUnicidad
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.TipoPersona != nil {
		p.TipoPersona = *req.TipoPersona
	}
	if req.Documento != nil {
		p.Documento = *req.Documento
	}
	if req.TipoDocumento != nil {
		p.TipoDocumento = *req.TipoDocumento
	}
	if req.Pais != nil {
		p.Pais = *req.Pais
	}
	if req.Direccion != nil {
		p.Direccion = req.Direccion
	}
	if req.Telefono != nil {
		p.Telefono = req.Telefono
	}
	if req.Email != nil {
		p.Email = req.Email
	}
	if req.PaginaWeb != nil {
		p.PaginaWeb = req.PaginaWeb
	}
	if req.Activo != nil {
		p.Activo = *req.Activo
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, traducirUnicidad(err)
	}
	return mapProveedor(p), nil
}

// Eliminar hard-deletes the supplier and cascades to its catalog rows.
// Deletion is rejected while purchase orders reference the supplier.
func (s *proveedorService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.buscar(ctx, id); err != nil {
		return err
	}
	n, err := s.ordenRepo.CountPorProveedor(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrProveedorConOrdenes
	}
	return s.repo.Delete(ctx, id)
}

func (s *proveedorService) buscar(ctx context.Context, id uuid.UUID) (*model.Proveedor, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProveedorNoEncontrado
		}
		return nil, err
	}
	return p, nil
}

func mapProveedor(p *model.Proveedor) *dto.ProveedorResponse {
	return &dto.ProveedorResponse{
		ID:            p.ID.String(),
		Nombre:        p.Nombre,
		TipoPersona:   p.TipoPersona,
		Documento:     p.Documento,
		TipoDocumento: p.TipoDocumento,
		Pais:          p.Pais,
		Direccion:     p.Direccion,
		Telefono:      p.Telefono,
		Email:         p.Email,
		PaginaWeb:     p.PaginaWeb,
		Activo:        p.Activo,
		CreadoEn:      p.CreatedAt.Format("2006-01-02T15:04:05Z"),
		ActualizadoEn: p.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
