package dto

import "time"

// PedidoItemRequest una línea del input de pedido: producto + cantidad.
type PedidoItemRequest struct {
	ID       string `json:"id"` // ID del producto
	Cantidad int    `json:"cantidad"`
}

// NuevoPedidoRequest input de nuevoPedido.
type NuevoPedidoRequest struct {
	Cliente string              `json:"cliente"`
	Pedido  []PedidoItemRequest `json:"pedido"`
	Estado  string              `json:"estado"` // opcional; PENDIENTE por defecto
}

// ActualizarPedidoRequest input de actualizarPedido. Si Pedido viene, las
// líneas reemplazan a las existentes y se revalida stock por cada una.
type ActualizarPedidoRequest struct {
	Cliente string              `json:"cliente"`
	Pedido  []PedidoItemRequest `json:"pedido"`
	Estado  *string             `json:"estado"`
}

// PedidoItemResponse línea de un pedido con nombre y precio capturados al
// momento de la colocación.
type PedidoItemResponse struct {
	ID       string  `json:"id"`
	Cantidad int     `json:"cantidad"`
	Nombre   string  `json:"nombre"`
	Precio   float64 `json:"precio"`
}

// PedidoResponse representación pública de un pedido. ClienteID se resuelve
// al objeto Cliente en la capa GraphQL.
type PedidoResponse struct {
	ID        string               `json:"id"`
	Pedido    []PedidoItemResponse `json:"pedido"`
	Total     float64              `json:"total"`
	ClienteID string               `json:"clienteId"`
	Vendedor  string               `json:"vendedor"`
	Estado    string               `json:"estado"`
	Creado    time.Time            `json:"creado"`
}
