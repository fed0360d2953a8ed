package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto es visible globalmente y mutable por cualquier usuario autenticado.
// Existencia se decrementa al colocar pedidos mediante una escritura
// condicional atómica (nunca check-then-write en dos pasos).
type Producto struct {
	ID         string
	Nombre     string
	Existencia int             // unidades disponibles
	Precio     decimal.Decimal // precio unitario de venta
	Creado     time.Time
}
