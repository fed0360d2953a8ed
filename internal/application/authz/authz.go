// Package authz centraliza la guarda de propiedad que antes se repetía en
// cada operación sobre clientes y pedidos.
package authz

import (
	"github.com/jhoicas/crm-api/internal/application/auth"
	"github.com/jhoicas/crm-api/internal/domain"
)

// RequirePrincipal falla con ErrUnauthorized si la petición es anónima.
func RequirePrincipal(p *auth.Principal) error {
	if p == nil {
		return domain.ErrUnauthorized
	}
	return nil
}

// VerificarPropietario verifica que el recurso pertenezca al usuario
// autenticado. Se invoca antes del cuerpo de toda operación con alcance de
// propietario; ErrForbidden si la identidad no coincide con el vendedor.
func VerificarPropietario(vendedorID string, p *auth.Principal) error {
	if err := RequirePrincipal(p); err != nil {
		return err
	}
	if vendedorID != p.ID {
		return domain.ErrForbidden
	}
	return nil
}
