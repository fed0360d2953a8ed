package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Pedido.
const (
	EstadoPendiente  = "PENDIENTE"
	EstadoCompletado = "COMPLETADO"
	EstadoCancelado  = "CANCELADO"
)

// EstadoValido reporta si s es uno de los estados conocidos.
func EstadoValido(s string) bool {
	switch s {
	case EstadoPendiente, EstadoCompletado, EstadoCancelado:
		return true
	}
	return false
}

// PedidoItem es una línea del pedido: producto + cantidad, con nombre y
// precio denormalizados al momento de la colocación.
type PedidoItem struct {
	ProductoID string
	Cantidad   int
	Nombre     string
	Precio     decimal.Decimal
}

// Pedido pertenece a un Cliente y a un Usuario (vendedor propietario).
// Total se calcula a partir de los precios vigentes al colocar el pedido.
type Pedido struct {
	ID        string
	Items     []PedidoItem
	Total     decimal.Decimal
	ClienteID string
	Vendedor  string // ID del Usuario propietario
	Estado    string // PENDIENTE, COMPLETADO, CANCELADO
	Creado    time.Time
}
