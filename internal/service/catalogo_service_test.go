package service

import (
	"context"
	"testing"

	"github.com/UNIANDES-202515-PROYECTO-II-G17-BACKEND/ms-compras/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogoFixture struct {
	proveedores *stubProveedorRepo
	catalogo    *stubCatalogoRepo
	svc         CatalogoService
}

func nuevaCatalogoFixture() *catalogoFixture {
	proveedores := newStubProveedorRepo()
	catalogo := newStubCatalogoRepo(proveedores)
	return &catalogoFixture{
		proveedores: proveedores,
		catalogo:    catalogo,
		svc:         NewCatalogoService(catalogo, proveedores, nil, 50, 200),
	}
}

func TestAsociarProducto(t *testing.T) {
	f := nuevaCatalogoFixture()
	prov := seedProveedor(f.proveedores, "Acme SAS", "900123456", true)
	prod := uuid.New()

	precio := dec("1500.50")
	resp, err := f.svc.Asociar(context.Background(), prov.ID, dto.AsociarProductoRequest{
		ProductoID:   prod.String(),
		SKUProveedor: ptr("ACME-001"),
		Precio:       precio,
		Moneda:       ptr("COP"),
		LeadTimeDias: ptr(7),
		LoteMinimo:   ptr(12),
	})
	require.NoError(t, err)
	assert.Equal(t, prod.String(), resp.ProductoID)
	assert.True(t, resp.Activo)
	require.NotNil(t, resp.Precio)
	assert.True(t, precio.Equal(*resp.Precio))
	require.Len(t, f.catalogo.rels, 1)
}

func TestAsociarProducto_UpsertActualizaTerminos(t *testing.T) {
	f := nuevaCatalogoFixture()
	prov := seedProveedor(f.proveedores, "Acme SAS", "900123456", true)
	prod := uuid.New()
	seedRelacion(f.catalogo, prov.ID, prod, ptr("VIEJO-SKU"), true)

	resp, err := f.svc.Asociar(context.Background(), prov.ID, dto.AsociarProductoRequest{
		ProductoID:   prod.String(),
		SKUProveedor: ptr("NUEVO-SKU"),
		LeadTimeDias: ptr(3),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.SKUProveedor)
	assert.Equal(t, "NUEVO-SKU", *resp.SKUProveedor)
	// same pair, so still a single catalog row
	require.Len(t, f.catalogo.rels, 1)
}

func TestAsociarProducto_ProveedorNoExiste(t *testing.T) {
	f := nuevaCatalogoFixture()
	_, err := f.svc.Asociar(context.Background(), uuid.New(), dto.AsociarProductoRequest{
		ProductoID: uuid.NewString(),
	})
	assert.ErrorIs(t, err, ErrProveedorNoEncontrado)
	assert.Empty(t, f.catalogo.rels)
}

func TestAsociarProducto_SKUDuplicadoMismoProveedor(t *testing.T) {
	f := nuevaCatalogoFixture()
	prov := seedProveedor(f.proveedores, "Acme SAS", "900123456", true)
	seedRelacion(f.catalogo, prov.ID, uuid.New(), ptr("ACME-001"), true)

	_, err := f.svc.Asociar(context.Background(), prov.ID, dto.AsociarProductoRequest{
		ProductoID:   uuid.NewString(),
		SKUProveedor: ptr("ACME-001"),
	})
	assert.ErrorIs(t, err, ErrConflictoUnicidad)
}

func TestListarCatalogoPorProveedor(t *testing.T) {
	f := nuevaCatalogoFixture()
	prov := seedProveedor(f.proveedores, "Acme SAS", "900123456", true)
	otro := seedProveedor(f.proveedores, "Beta SA", "800111222", true)
	seedRelacion(f.catalogo, prov.ID, uuid.New(), nil, true)
	seedRelacion(f.catalogo, prov.ID, uuid.New(), nil, false)
	seedRelacion(f.catalogo, otro.ID, uuid.New(), nil, true)

	todos, err := f.svc.ListarPorProveedor(context.Background(), prov.ID, dto.CatalogoFilter{})
	require.NoError(t, err)
	assert.Len(t, todos, 2)

	activos, err := f.svc.ListarPorProveedor(context.Background(), prov.ID, dto.CatalogoFilter{Activo: ptr(true)})
	require.NoError(t, err)
	assert.Len(t, activos, 1)
}

func TestListarCatalogo_ProveedorNoExiste(t *testing.T) {
	f := nuevaCatalogoFixture()
	_, err := f.svc.ListarPorProveedor(context.Background(), uuid.New(), dto.CatalogoFilter{})
	assert.ErrorIs(t, err, ErrProveedorNoEncontrado)
}

func TestDesasociarProducto(t *testing.T) {
	f := nuevaCatalogoFixture()
	prov := seedProveedor(f.proveedores, "Acme SAS", "900123456", true)
	prod := uuid.New()
	seedRelacion(f.catalogo, prov.ID, prod, nil, true)

	require.NoError(t, f.svc.Desasociar(context.Background(), prov.ID, prod))
	assert.Empty(t, f.catalogo.rels)

	err := f.svc.Desasociar(context.Background(), prov.ID, prod)
	assert.ErrorIs(t, err, ErrRelacionNoEncontrada)
}

func TestProveedoresPorProducto(t *testing.T) {
	f := nuevaCatalogoFixture()
	prod := uuid.New()
	beta := seedProveedor(f.proveedores, "Beta SA", "800111222", true)
	acme := seedProveedor(f.proveedores, "Acme SAS", "900123456", true)
	inactivo := seedProveedor(f.proveedores, "Cerrado Ltda", "700333444", false)
	seedRelacion(f.catalogo, beta.ID, prod, ptr("B-01"), true)
	seedRelacion(f.catalogo, acme.ID, prod, ptr("A-01"), true)
	seedRelacion(f.catalogo, inactivo.ID, prod, nil, true)
	seedRelacion(f.catalogo, acme.ID, uuid.New(), ptr("A-02"), true)

	todos, err := f.svc.ProveedoresPorProducto(context.Background(), prod, dto.ProveedoresPorProductoFilter{})
	require.NoError(t, err)
	require.Len(t, todos, 3)
	// ordered by supplier name, terms paired with the right supplier
	assert.Equal(t, "Acme SAS", todos[0].Nombre)
	require.NotNil(t, todos[0].Terminos.SKUProveedor)
	assert.Equal(t, "A-01", *todos[0].Terminos.SKUProveedor)

	soloActivos, err := f.svc.ProveedoresPorProducto(context.Background(), prod, dto.ProveedoresPorProductoFilter{
		ActivoProveedor: ptr(true),
	})
	require.NoError(t, err)
	assert.Len(t, soloActivos, 2)
}

func TestProveedoresPorProducto_SinOfertas(t *testing.T) {
	f := nuevaCatalogoFixture()
	resp, err := f.svc.ProveedoresPorProducto(context.Background(), uuid.New(), dto.ProveedoresPorProductoFilter{})
	require.NoError(t, err)
	assert.Empty(t, resp)
}
