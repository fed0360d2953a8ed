package dto

// TopClienteResponse entrada del ranking mejoresClientes.
type TopClienteResponse struct {
	Total   float64         `json:"total"`
	Cliente ClienteResponse `json:"cliente"`
}

// TopVendedorResponse entrada del ranking mejoresVendedores.
type TopVendedorResponse struct {
	Total    float64         `json:"total"`
	Vendedor UsuarioResponse `json:"vendedor"`
}
