package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de una orden de compra.
// PARCIAL belongs to the receiving workflow (ms-inventario) — this service
// respects it as a valid current state but never sets it.
const (
	EstadoAbierta   = "ABIERTA"
	EstadoEnviada   = "ENVIADA"
	EstadoParcial   = "PARCIAL"
	EstadoCompleta  = "COMPLETA"
	EstadoCancelada = "CANCELADA"
)

// EstadosValidos is the closed set of order states accepted on filters.
var EstadosValidos = map[string]bool{
	EstadoAbierta:   true,
	EstadoEnviada:   true,
	EstadoParcial:   true,
	EstadoCompleta:  true,
	EstadoCancelada: true,
}

// OrdenCompra is a purchase order placed against a supplier. Monetary totals
// are cached at creation time from the item snapshot and never recomputed.
type OrdenCompra struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Codigo        string     `gorm:"uniqueIndex;not null"` // OC-<year>-<6 hex>
	ProveedorID   uuid.UUID  `gorm:"type:uuid;index;not null"`
	PedidoRef     *uuid.UUID `gorm:"type:uuid"` // external order id, unchecked
	Estado        string     `gorm:"not null;default:'ABIERTA'"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(14,4);not null"`
	ImpuestoTotal decimal.Decimal `gorm:"type:decimal(14,4);not null"`
	Total         decimal.Decimal `gorm:"type:decimal(14,4);not null"`
	Moneda        *string         `gorm:"type:char(3)"`
	Notas         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Items     []ItemOrdenCompra `gorm:"foreignKey:OrdenID;constraint:OnDelete:CASCADE"`
	Proveedor *Proveedor        `gorm:"foreignKey:ProveedorID"`
}

func (OrdenCompra) TableName() string { return "ordenes_compra" }

// ItemOrdenCompra is an immutable line-item snapshot. SKUProveedor is copied
// from the catalog at creation time when the payload does not supply one.
type ItemOrdenCompra struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrdenID        uuid.UUID `gorm:"type:uuid;index;not null"`
	ProductoID     uuid.UUID `gorm:"type:uuid;not null"` // external, unchecked
	SKUProveedor   *string   `gorm:"column:sku_proveedor"`
	Cantidad       int       `gorm:"not null"`
	PrecioUnitario *decimal.Decimal `gorm:"type:decimal(14,4)"`
	ImpuestoPct    *decimal.Decimal `gorm:"type:decimal(5,2)"`
	DescuentoPct   *decimal.Decimal `gorm:"type:decimal(5,2)"`
	CreatedAt      time.Time
}

func (ItemOrdenCompra) TableName() string { return "items_orden_compra" }
