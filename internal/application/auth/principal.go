package auth

import "context"

// Principal es la identidad autenticada de una petición. Se construye en el
// middleware de transporte a partir del token y se pasa explícitamente a
// cada caso de uso; nunca se lee de estado global.
type Principal struct {
	ID       string
	Email    string
	Nombre   string
	Apellido string
}

type principalKey struct{}

// WithPrincipal devuelve un contexto que transporta la identidad autenticada.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext devuelve la identidad de la petición o nil si la
// petición es anónima.
func PrincipalFromContext(ctx context.Context) *Principal {
	p, _ := ctx.Value(principalKey{}).(*Principal)
	return p
}
