package entity

import "time"

// Usuario representa un vendedor del CRM. Es propietario de los clientes
// y pedidos que crea.
type Usuario struct {
	ID           string
	Nombre       string
	Apellido     string
	Email        string    // único en el sistema
	PasswordHash string    // bcrypt hash, nunca plano en dominio después de persistir
	Creado       time.Time
}
