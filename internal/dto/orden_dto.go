package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ItemOrdenCompraInput struct {
	ProductoID     string           `json:"producto_id"     validate:"required,uuid"`
	Cantidad       int              `json:"cantidad"        validate:"required,gt=0"`
	PrecioUnitario *decimal.Decimal `json:"precio_unitario" validate:"omitempty,min=0"`
	ImpuestoPct    *decimal.Decimal `json:"impuesto_pct"    validate:"omitempty,min=0,max=100"`
	DescuentoPct   *decimal.Decimal `json:"descuento_pct"   validate:"omitempty,min=0,max=100"`
	SKUProveedor   *string          `json:"sku_proveedor"   validate:"omitempty,max=128"`
}

type CrearOrdenCompraRequest struct {
	ProveedorID string                 `json:"proveedor_id" validate:"required,uuid"`
	Items       []ItemOrdenCompraInput `json:"items"        validate:"dive"`
	PedidoRef   *string                `json:"pedido_ref"   validate:"omitempty,uuid"`
	Moneda      *string                `json:"moneda"       validate:"omitempty,len=3"`
	Notas       *string                `json:"notas"`
	Codigo      *string                `json:"codigo"       validate:"omitempty,max=32"`
}

// OrdenCompraFilter holds the conjunctive list filters.
type OrdenCompraFilter struct {
	ProveedorID string `form:"proveedor_id"`
	Estado      string `form:"estado"` // ABIERTA|ENVIADA|PARCIAL|COMPLETA|CANCELADA
	Q           string `form:"q"`      // case-insensitive substring over codigo
	Limit       int    `form:"limit"`
	Offset      int    `form:"offset"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemOrdenCompraResponse struct {
	ID             string           `json:"id"`
	ProductoID     string           `json:"producto_id"`
	SKUProveedor   *string          `json:"sku_proveedor,omitempty"`
	Cantidad       int              `json:"cantidad"`
	PrecioUnitario *decimal.Decimal `json:"precio_unitario,omitempty"`
	ImpuestoPct    *decimal.Decimal `json:"impuesto_pct,omitempty"`
	DescuentoPct   *decimal.Decimal `json:"descuento_pct,omitempty"`
}

type OrdenCompraResponse struct {
	ID            string                    `json:"id"`
	Codigo        string                    `json:"codigo"`
	ProveedorID   string                    `json:"proveedor_id"`
	PedidoRef     *string                   `json:"pedido_ref,omitempty"`
	Estado        string                    `json:"estado"`
	Subtotal      decimal.Decimal           `json:"subtotal"`
	ImpuestoTotal decimal.Decimal           `json:"impuesto_total"`
	Total         decimal.Decimal           `json:"total"`
	Moneda        *string                   `json:"moneda,omitempty"`
	Notas         *string                   `json:"notas,omitempty"`
	Items         []ItemOrdenCompraResponse `json:"items"`
	CreadoEn      string                    `json:"creado_en"`
	ActualizadoEn string                    `json:"actualizado_en"`
}

type OrdenCompraListResponse struct {
	Data   []OrdenCompraResponse `json:"data"`
	Total  int64                 `json:"total"`
	Limit  int                   `json:"limit"`
	Offset int                   `json:"offset"`
}
