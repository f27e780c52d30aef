package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// AsociarProductoRequest creates or updates the purchase terms linking a
// supplier and an external product (upsert on proveedor+producto).
type AsociarProductoRequest struct {
	ProductoID   string           `json:"producto_id"    validate:"required,uuid"`
	SKUProveedor *string          `json:"sku_proveedor"  validate:"omitempty,max=128"`
	Precio       *decimal.Decimal `json:"precio"         validate:"omitempty,min=0"`
	Moneda       *string          `json:"moneda"         validate:"omitempty,len=3"`
	LeadTimeDias *int             `json:"lead_time_dias" validate:"omitempty,min=0"`
	LoteMinimo   *int             `json:"lote_minimo"    validate:"omitempty,min=1"`
	Activo       *bool            `json:"activo"`
}

// CatalogoFilter filters a supplier's catalog listing.
type CatalogoFilter struct {
	Activo *bool `form:"activo"`
}

// ProveedoresPorProductoFilter filters the reverse lookup (which suppliers
// offer a given product).
type ProveedoresPorProductoFilter struct {
	ActivoRelacion  *bool `form:"activo_relacion"`
	ActivoProveedor *bool `form:"activo_proveedor"`
	Limit           int   `form:"limit"`
	Offset          int   `form:"offset"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoProveedorResponse struct {
	ProveedorID  string           `json:"proveedor_id"`
	ProductoID   string           `json:"producto_id"`
	SKUProveedor *string          `json:"sku_proveedor,omitempty"`
	Precio       *decimal.Decimal `json:"precio,omitempty"`
	Moneda       *string          `json:"moneda,omitempty"`
	LeadTimeDias *int             `json:"lead_time_dias,omitempty"`
	LoteMinimo   *int             `json:"lote_minimo,omitempty"`
	Activo       bool             `json:"activo"`
}

// TerminosCompraResponse exposes the purchase terms of one catalog row.
type TerminosCompraResponse struct {
	SKUProveedor *string          `json:"sku_proveedor,omitempty"`
	Precio       *decimal.Decimal `json:"precio,omitempty"`
	Moneda       *string          `json:"moneda,omitempty"`
	LeadTimeDias *int             `json:"lead_time_dias,omitempty"`
	LoteMinimo   *int             `json:"lote_minimo,omitempty"`
	Activo       bool             `json:"activo"`
}

// ProveedorParaProductoResponse pairs a supplier with its terms for the
// product being looked up.
type ProveedorParaProductoResponse struct {
	ProveedorResponse
	Terminos TerminosCompraResponse `json:"terminos"`
}
