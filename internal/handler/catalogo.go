package handler

import (
	"net/http"

	"github.com/UNIANDES-202515-PROYECTO-II-G17-BACKEND/ms-compras/internal/apierror"
	"github.com/UNIANDES-202515-PROYECTO-II-G17-BACKEND/ms-compras/internal/dto"
	"github.com/UNIANDES-202515-PROYECTO-II-G17-BACKEND/ms-compras/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CatalogoHandler serves the supplier↔product catalog routes.
type CatalogoHandler struct{ svc service.CatalogoService }

func NewCatalogoHandler(svc service.CatalogoService) *CatalogoHandler {
	return &CatalogoHandler{svc: svc}
}

func (h *CatalogoHandler) Asociar(c *gin.Context) {
	proveedorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.AsociarProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Asociar(c.Request.Context(), proveedorID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CatalogoHandler) ListarPorProveedor(c *gin.Context) {
	proveedorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var filter dto.CatalogoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.ListarPorProveedor(c.Request.Context(), proveedorID, filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogoHandler) Desasociar(c *gin.Context) {
	proveedorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	productoID, err := uuid.Parse(c.Param("producto_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID de producto invalido"))
		return
	}
	if err := h.svc.Desasociar(c.Request.Context(), proveedorID, productoID); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ProveedoresPorProducto godoc
// @Summary Proveedores que abastecen un producto, con sus términos de compra
// @Tags catalogo
// @Produce json
// @Param producto_id path string true "ID del producto"
// @Success 200 {array} dto.ProveedorParaProductoResponse
// @Router /v1/productos/{producto_id}/proveedores [get]
func (h *CatalogoHandler) ProveedoresPorProducto(c *gin.Context) {
	productoID, err := uuid.Parse(c.Param("producto_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID de producto invalido"))
		return
	}
	var filter dto.ProveedoresPorProductoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.ProveedoresPorProducto(c.Request.Context(), productoID, filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
