package service

import (
	"github.com/UNIANDES-202515-PROYECTO-II-G17-BACKEND/ms-compras/internal/model"

	"github.com/shopspring/decimal"
)

var cien = decimal.NewFromInt(100)

// CalcularTotales derives (subtotal, impuesto total, total) from the line
// items. All arithmetic is exact decimal; nil numeric fields count as zero.
//
// Per item, in this fixed order: line value = precio × cantidad, the discount
// comes off the line value, and tax applies to the discounted net — discount
// before tax, never the other way around. The grand total is computed once at
// the end from the two accumulators rather than summed line by line.
func CalcularTotales(items []model.ItemOrdenCompra) (subtotal, impuestos, total decimal.Decimal) {
	subtotal = decimal.Zero
	impuestos = decimal.Zero

	for _, it := range items {
		precio := valorODecimalCero(it.PrecioUnitario)
		cantidad := decimal.NewFromInt(int64(it.Cantidad))

		linea := precio.Mul(cantidad)
		descuento := linea.Mul(valorODecimalCero(it.DescuentoPct)).Div(cien)
		neto := linea.Sub(descuento)
		impuesto := neto.Mul(valorODecimalCero(it.ImpuestoPct)).Div(cien)

		subtotal = subtotal.Add(neto)
		impuestos = impuestos.Add(impuesto)
	}

	return subtotal, impuestos, subtotal.Add(impuestos)
}

func valorODecimalCero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
