package dto

import "time"

// ProductoRequest input de nuevoProducto.
type ProductoRequest struct {
	Nombre     string  `json:"nombre"`
	Existencia int     `json:"existencia"`
	Precio     float64 `json:"precio"`
}

// ActualizarProductoRequest input de actualizarProducto. Campos nil no se tocan.
type ActualizarProductoRequest struct {
	Nombre     *string  `json:"nombre"`
	Existencia *int     `json:"existencia"`
	Precio     *float64 `json:"precio"`
}

// ProductoResponse representación pública de un producto.
type ProductoResponse struct {
	ID         string    `json:"id"`
	Nombre     string    `json:"nombre"`
	Existencia int       `json:"existencia"`
	Precio     float64   `json:"precio"`
	Creado     time.Time `json:"creado"`
}
