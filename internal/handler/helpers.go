package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/UNIANDES-202515-PROYECTO-II-G17-BACKEND/ms-compras/internal/apierror"
	"github.com/UNIANDES-202515-PROYECTO-II-G17-BACKEND/ms-compras/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// writeServiceError maps domain errors to HTTP statuses. Anything outside the
// taxonomy is logged and reported as a generic 500 — internals never leak.
func writeServiceError(c *gin.Context, err error) {
	var noOfertados *service.ProductosNoOfertadosError

	switch {
	case errors.Is(err, service.ErrOrdenNoEncontrada),
		errors.Is(err, service.ErrProveedorNoEncontrado),
		errors.Is(err, service.ErrRelacionNoEncontrada):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))

	case errors.Is(err, service.ErrConflictoUnicidad),
		errors.Is(err, service.ErrProveedorConOrdenes):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))

	case errors.As(err, &noOfertados):
		ids := make([]string, 0, len(noOfertados.ProductoIDs))
		for _, id := range noOfertados.ProductoIDs {
			ids = append(ids, id.String())
		}
		c.JSON(http.StatusBadRequest, apierror.WithIDs(noOfertados.Error(), ids))

	case errors.Is(err, service.ErrProveedorInvalido),
		errors.Is(err, service.ErrOrdenSinItems),
		errors.Is(err, service.ErrTransicionInvalida):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))

	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("unhandled service error")
		c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
	}
}
