package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/UNIANDES-202515-PROYECTO-II-G17-BACKEND/ms-compras/internal/dto"
	"github.com/UNIANDES-202515-PROYECTO-II-G17-BACKEND/ms-compras/internal/model"
	"github.com/UNIANDES-202515-PROYECTO-II-G17-BACKEND/ms-compras/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const proveedoresCacheTTL = 15 * time.Minute

type CatalogoService interface {
	// Asociar upserts the purchase terms keyed on (proveedor, producto).
	Asociar(ctx context.Context, proveedorID uuid.UUID, req dto.AsociarProductoRequest) (*dto.ProductoProveedorResponse, error)
	ListarPorProveedor(ctx context.Context, proveedorID uuid.UUID, filter dto.CatalogoFilter) ([]dto.ProductoProveedorResponse, error)
	Desasociar(ctx context.Context, proveedorID, productoID uuid.UUID) error
	// ProveedoresPorProducto returns the suppliers offering a product, each
	// with its purchase terms.
	ProveedoresPorProducto(ctx context.Context, productoID uuid.UUID, filter dto.ProveedoresPorProductoFilter) ([]dto.ProveedorParaProductoResponse, error)
}

type catalogoService struct {
	repo          repository.CatalogoRepository
	proveedorRepo repository.ProveedorRepository
	rdb           *redis.Client
	limitDefecto  int
	limitMaximo   int
}

func NewCatalogoService(repo repository.CatalogoRepository, proveedorRepo repository.ProveedorRepository, rdb *redis.Client, limitDefecto, limitMaximo int) CatalogoService {
	if limitDefecto < 1 {
		limitDefecto = 50
	}
	if limitMaximo < limitDefecto {
		limitMaximo = 200
	}
	return &catalogoService{
		repo:          repo,
		proveedorRepo: proveedorRepo,
		rdb:           rdb,
		limitDefecto:  limitDefecto,
		limitMaximo:   limitMaximo,
	}
}

func (s *catalogoService) Asociar(ctx context.Context, proveedorID uuid.UUID, req dto.AsociarProductoRequest) (*dto.ProductoProveedorResponse, error) {
	if _, err := s.proveedorRepo.FindByID(ctx, proveedorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProveedorNoEncontrado
		}
		return nil, err
	}

	productoID, err := uuid.Parse(req.ProductoID)
	if err != nil {
		return nil, fmt.Errorf("producto_id inválido: %w", err)
	}

	activo := true
	if req.Activo != nil {
		activo = *req.Activo
	}
	rel := &model.ProductoProveedor{
		ProveedorID:  proveedorID,
		ProductoID:   productoID,
		SKUProveedor: req.SKUProveedor,
		Precio:       req.Precio,
		Moneda:       req.Moneda,
		LeadTimeDias: req.LeadTimeDias,
		LoteMinimo:   req.LoteMinimo,
		Activo:       activo,
	}
	if err := s.repo.Upsert(ctx, rel); err != nil {
		return nil, traducirUnicidad(err)
	}

	s.invalidar(ctx, productoID)
	return mapRelacion(rel), nil
}

func (s *catalogoService) ListarPorProveedor(ctx context.Context, proveedorID uuid.UUID, filter dto.CatalogoFilter) ([]dto.ProductoProveedorResponse, error) {
	if _, err := s.proveedorRepo.FindByID(ctx, proveedorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProveedorNoEncontrado
		}
		return nil, err
	}
	rels, err := s.repo.ListPorProveedor(ctx, proveedorID, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductoProveedorResponse, 0, len(rels))
	for i := range rels {
		out = append(out, *mapRelacion(&rels[i]))
	}
	return out, nil
}

func (s *catalogoService) Desasociar(ctx context.Context, proveedorID, productoID uuid.UUID) error {
	if err := s.repo.Delete(ctx, proveedorID, productoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRelacionNoEncontrada
		}
		return err
	}
	s.invalidar(ctx, productoID)
	return nil
}

func (s *catalogoService) ProveedoresPorProducto(ctx context.Context, productoID uuid.UUID, filter dto.ProveedoresPorProductoFilter) ([]dto.ProveedorParaProductoResponse, error) {
	if filter.Limit < 1 {
		filter.Limit = s.limitDefecto
	}
	if filter.Limit > s.limitMaximo {
		filter.Limit = s.limitMaximo
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	// Read-through cache for the hot unfiltered first page only; filtered
	// variants always go to the store.
	cacheable := s.rdb != nil &&
		filter.ActivoRelacion == nil && filter.ActivoProveedor == nil &&
		filter.Offset == 0 && filter.Limit == s.limitDefecto
	cacheKey := cacheKeyProveedores(productoID)

	if cacheable {
		if cached, err := s.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var out []dto.ProveedorParaProductoResponse
			if jsonErr := json.Unmarshal(cached, &out); jsonErr == nil {
				return out, nil
			}
		}
	}

	rels, err := s.repo.ListProveedoresPorProducto(ctx, productoID, filter)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ProveedorParaProductoResponse, 0, len(rels))
	for i := range rels {
		rel := &rels[i]
		if rel.Proveedor == nil {
			continue
		}
		out = append(out, dto.ProveedorParaProductoResponse{
			ProveedorResponse: *mapProveedor(rel.Proveedor),
			Terminos: dto.TerminosCompraResponse{
				SKUProveedor: rel.SKUProveedor,
				Precio:       rel.Precio,
				Moneda:       rel.Moneda,
				LeadTimeDias: rel.LeadTimeDias,
				LoteMinimo:   rel.LoteMinimo,
				Activo:       rel.Activo,
			},
		})
	}

	// Populate cache — best effort, ignore errors
	if cacheable {
		if b, jsonErr := json.Marshal(out); jsonErr == nil {
			_ = s.rdb.Set(context.Background(), cacheKey, b, proveedoresCacheTTL).Err()
		}
	}

	return out, nil
}

// invalidar drops the cached supplier list for a product after any catalog
// mutation touching it. Best effort: a failed delete only means a stale read
// until the TTL expires.
func (s *catalogoService) invalidar(ctx context.Context, productoID uuid.UUID) {
	if s.rdb == nil {
		return
	}
	_ = s.rdb.Del(ctx, cacheKeyProveedores(productoID)).Err()
}

func cacheKeyProveedores(productoID uuid.UUID) string {
	return "proveedores:producto:" + productoID.String()
}

func mapRelacion(rel *model.ProductoProveedor) *dto.ProductoProveedorResponse {
	return &dto.ProductoProveedorResponse{
		ProveedorID:  rel.ProveedorID.String(),
		ProductoID:   rel.ProductoID.String(),
		SKUProveedor: rel.SKUProveedor,
		Precio:       rel.Precio,
		Moneda:       rel.Moneda,
		LeadTimeDias: rel.LeadTimeDias,
		LoteMinimo:   rel.LoteMinimo,
		Activo:       rel.Activo,
	}
}
