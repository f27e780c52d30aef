package handler

import (
	"net/http"

	"github.com/UNIANDES-202515-PROYECTO-II-G17-BACKEND/ms-compras/internal/apierror"
	"github.com/UNIANDES-202515-PROYECTO-II-G17-BACKEND/ms-compras/internal/dto"
	"github.com/UNIANDES-202515-PROYECTO-II-G17-BACKEND/ms-compras/internal/model"
	"github.com/UNIANDES-202515-PROYECTO-II-G17-BACKEND/ms-compras/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrdenesCompraHandler struct{ svc service.OrdenCompraService }

func NewOrdenesCompraHandler(svc service.OrdenCompraService) *OrdenesCompraHandler {
	return &OrdenesCompraHandler{svc: svc}
}

// Crear godoc
// @Summary Crea una orden de compra validando proveedor y catálogo
// @Tags ordenes-compra
// @Accept json
// @Produce json
// @Param payload body dto.CrearOrdenCompraRequest true "Orden a crear"
// @Success 201 {object} dto.OrdenCompraResponse
// @Failure 400 {object} apierror.DetailedError
// @Router /v1/ordenes-compra [post]
func (h *OrdenesCompraHandler) Crear(c *gin.Context) {
	var req dto.CrearOrdenCompraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *OrdenesCompraHandler) Listar(c *gin.Context) {
	var filter dto.OrdenCompraFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	if filter.Estado != "" && !model.EstadosValidos[filter.Estado] {
		c.JSON(http.StatusBadRequest, apierror.New("estado invalido: "+filter.Estado))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrdenesCompraHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrdenesCompraHandler) MarcarEnviada(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.MarcarEnviada(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrdenesCompraHandler) MarcarCompleta(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.MarcarCompleta(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrdenesCompraHandler) Cancelar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Cancelar(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrdenesCompraHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return uuid.Nil, false
	}
	return id, true
}
