package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// Domain error taxonomy. Handlers map these to HTTP statuses; everything not
// listed here is treated as an internal failure and reported generically.
var (
	ErrProveedorInvalido     = errors.New("proveedor inválido o inactivo")
	ErrProveedorNoEncontrado = errors.New("proveedor no encontrado")
	ErrProveedorConOrdenes   = errors.New("el proveedor tiene ordenes de compra asociadas")
	ErrOrdenSinItems         = errors.New("la orden debe tener items")
	ErrOrdenNoEncontrada     = errors.New("orden de compra no encontrada")
	ErrTransicionInvalida    = errors.New("transición de estado no válida")
	ErrRelacionNoEncontrada  = errors.New("relación proveedor-producto no encontrada")
	ErrConflictoUnicidad     = errors.New("conflicto de unicidad")
)

// ProductosNoOfertadosError reports which products lack a catalog row for the
// supplier of an order being created.
type ProductosNoOfertadosError struct {
	ProductoIDs []uuid.UUID
}

func (e *ProductosNoOfertadosError) Error() string {
	ids := make([]string, 0, len(e.ProductoIDs))
	for _, id := range e.ProductoIDs {
		ids = append(ids, id.String())
	}
	sort.Strings(ids)
	return fmt.Sprintf("producto(s) no ofertados por el proveedor: %s", strings.Join(ids, ", "))
}

// traducirUnicidad converts a Postgres unique violation (23505) into the
// domain conflict error so callers never see driver-level errors.
func traducirUnicidad(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return fmt.Errorf("%w: %s", ErrConflictoUnicidad, pgErr.ConstraintName)
	}
	return err
}
