package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tipos de persona aceptados para un proveedor.
const (
	PersonaNatural  = "NATURAL"
	PersonaJuridica = "JURIDICA"
)

// Proveedor represents a supplier with fiscal identity and contact data.
// The (documento, pais) pair is unique across all suppliers.
type Proveedor struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre        string    `gorm:"not null"`
	TipoPersona   string    `gorm:"column:tipo_persona;not null"` // NATURAL | JURIDICA
	Documento     string    `gorm:"not null;uniqueIndex:uq_proveedor_documento_pais"`
	TipoDocumento string    `gorm:"not null"` // CC | NIT | RUC | PASAPORTE | CE
	Pais          string    `gorm:"type:char(2);not null;uniqueIndex:uq_proveedor_documento_pais"`
	Direccion     *string
	Telefono      *string
	Email         *string
	PaginaWeb     *string
	Activo        bool `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Catalog rows are deleted with the supplier; ordenes are NOT — the
	// service rejects deletion while orders exist (restrict semantics).
	Productos []ProductoProveedor `gorm:"foreignKey:ProveedorID;constraint:OnDelete:CASCADE"`
	Ordenes   []OrdenCompra       `gorm:"foreignKey:ProveedorID;constraint:OnDelete:RESTRICT"`
}

func (Proveedor) TableName() string { return "proveedores" }

// ProductoProveedor links a supplier to an external product id along with the
// negotiated purchase terms. ProductoID is minted by ms-inventario and is
// never validated here. SKUProveedor must be unique per supplier when set;
// NULL SKUs do not collide under Postgres unique-index semantics.
type ProductoProveedor struct {
	ProveedorID  uuid.UUID        `gorm:"type:uuid;primaryKey;uniqueIndex:uq_catalogo_proveedor_sku"`
	ProductoID   uuid.UUID        `gorm:"type:uuid;primaryKey"`
	SKUProveedor *string          `gorm:"column:sku_proveedor;uniqueIndex:uq_catalogo_proveedor_sku"`
	Precio       *decimal.Decimal `gorm:"type:decimal(14,4)"`
	Moneda       *string          `gorm:"type:char(3)"` // USD, COP, MXN…
	LeadTimeDias *int
	LoteMinimo   *int
	Activo       bool `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Proveedor *Proveedor `gorm:"foreignKey:ProveedorID"`
}

func (ProductoProveedor) TableName() string { return "producto_proveedor" }
