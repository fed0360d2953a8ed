package gql

import (
	"github.com/graphql-go/graphql"

	"github.com/jhoicas/crm-api/internal/application/auth"
	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// NewSchema construye el esquema GraphQL completo del CRM. Los nombres de
// tipos y operaciones son los del API público (obtenerUsuario, nuevoPedido,
// mejoresClientes, ...).
func NewSchema(r *Resolver) (graphql.Schema, error) {
	usuarioType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Usuario",
		Fields: graphql.Fields{
			"id":       &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"nombre":   &graphql.Field{Type: graphql.String},
			"apellido": &graphql.Field{Type: graphql.String},
			"email":    &graphql.Field{Type: graphql.String},
			"creado":   &graphql.Field{Type: graphql.DateTime},
		},
	})

	tokenType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Token",
		Fields: graphql.Fields{
			"token": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	productoType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Producto",
		Fields: graphql.Fields{
			"id":         &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"nombre":     &graphql.Field{Type: graphql.String},
			"existencia": &graphql.Field{Type: graphql.Int},
			"precio":     &graphql.Field{Type: graphql.Float},
			"creado":     &graphql.Field{Type: graphql.DateTime},
		},
	})

	clienteType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Cliente",
		Fields: graphql.Fields{
			"id":       &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"nombre":   &graphql.Field{Type: graphql.String},
			"apellido": &graphql.Field{Type: graphql.String},
			"empresa":  &graphql.Field{Type: graphql.String},
			"email":    &graphql.Field{Type: graphql.String},
			"telefono": &graphql.Field{Type: graphql.String},
			"vendedor": &graphql.Field{Type: graphql.ID},
			"creado":   &graphql.Field{Type: graphql.DateTime},
		},
	})

	estadoEnum := graphql.NewEnum(graphql.EnumConfig{
		Name: "EstadoPedido",
		Values: graphql.EnumValueConfigMap{
			"PENDIENTE":  &graphql.EnumValueConfig{Value: entity.EstadoPendiente},
			"COMPLETADO": &graphql.EnumValueConfig{Value: entity.EstadoCompletado},
			"CANCELADO":  &graphql.EnumValueConfig{Value: entity.EstadoCancelado},
		},
	})

	pedidoGrupoType := graphql.NewObject(graphql.ObjectConfig{
		Name: "PedidoGrupo",
		Fields: graphql.Fields{
			"id":       &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"cantidad": &graphql.Field{Type: graphql.Int},
			"nombre":   &graphql.Field{Type: graphql.String},
			"precio":   &graphql.Field{Type: graphql.Float},
		},
	})

	pedidoType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Pedido",
		Fields: graphql.Fields{
			"id":       &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"pedido":   &graphql.Field{Type: graphql.NewList(pedidoGrupoType)},
			"total":    &graphql.Field{Type: graphql.Float},
			"vendedor": &graphql.Field{Type: graphql.ID},
			"estado":   &graphql.Field{Type: estadoEnum},
			"creado":   &graphql.Field{Type: graphql.DateTime},
			// el cliente se resuelve bajo demanda, sin guarda de propiedad:
			// el pedido que lo contiene ya pasó por la operación que decide
			// su visibilidad (equivalente al populate del almacén de
			// documentos)
			"cliente": &graphql.Field{
				Type: clienteType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					pedido, ok := p.Source.(*dto.PedidoResponse)
					if !ok {
						return nil, nil
					}
					return r.Clientes.Lookup(p.Context, pedido.ClienteID)
				},
			},
		},
	})

	topClienteType := graphql.NewObject(graphql.ObjectConfig{
		Name: "TopCliente",
		Fields: graphql.Fields{
			"total":   &graphql.Field{Type: graphql.Float},
			"cliente": &graphql.Field{Type: clienteType},
		},
	})

	topVendedorType := graphql.NewObject(graphql.ObjectConfig{
		Name: "TopVendedor",
		Fields: graphql.Fields{
			"total":    &graphql.Field{Type: graphql.Float},
			"vendedor": &graphql.Field{Type: usuarioType},
		},
	})

	usuarioInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UsuarioInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"nombre":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"apellido": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	autenticarInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "AutenticarInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	productoInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ProductoInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"nombre":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"existencia": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
			"precio":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
		},
	})

	actualizarProductoInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ActualizarProductoInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"nombre":     &graphql.InputObjectFieldConfig{Type: graphql.String},
			"existencia": &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"precio":     &graphql.InputObjectFieldConfig{Type: graphql.Float},
		},
	})

	clienteInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ClienteInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"nombre":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"apellido": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"empresa":  &graphql.InputObjectFieldConfig{Type: graphql.String},
			"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"telefono": &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	actualizarClienteInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ActualizarClienteInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"nombre":   &graphql.InputObjectFieldConfig{Type: graphql.String},
			"apellido": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"empresa":  &graphql.InputObjectFieldConfig{Type: graphql.String},
			"email":    &graphql.InputObjectFieldConfig{Type: graphql.String},
			"telefono": &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	pedidoProductoInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "PedidoProductoInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"id":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"cantidad": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		},
	})

	pedidoInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "PedidoInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"cliente": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"pedido":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.NewList(pedidoProductoInput))},
			"estado":  &graphql.InputObjectFieldConfig{Type: estadoEnum},
		},
	})

	actualizarPedidoInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ActualizarPedidoInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"cliente": &graphql.InputObjectFieldConfig{Type: graphql.ID},
			"pedido":  &graphql.InputObjectFieldConfig{Type: graphql.NewList(pedidoProductoInput)},
			"estado":  &graphql.InputObjectFieldConfig{Type: estadoEnum},
		},
	})

	idArg := graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
	}

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"obtenerUsuario": &graphql.Field{
				Type: usuarioType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Auth.CurrentUser(p.Context, auth.PrincipalFromContext(p.Context))
				},
			},
			"obtenerProductos": &graphql.Field{
				Type: graphql.NewList(productoType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Productos.List(p.Context)
				},
			},
			"obtenerProducto": &graphql.Field{
				Type: productoType,
				Args: idArg,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := stringArg(p, "id")
					if err != nil {
						return nil, err
					}
					return r.Productos.GetByID(p.Context, id)
				},
			},
			"buscarProducto": &graphql.Field{
				Type: graphql.NewList(productoType),
				Args: graphql.FieldConfigArgument{
					"texto": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					texto, err := stringArg(p, "texto")
					if err != nil {
						return nil, err
					}
					return r.Productos.Search(p.Context, texto)
				},
			},
			"obtenerClientes": &graphql.Field{
				Type: graphql.NewList(clienteType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Clientes.List(p.Context)
				},
			},
			"obtenerClientesVendedor": &graphql.Field{
				Type: graphql.NewList(clienteType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Clientes.ListByVendedor(p.Context, auth.PrincipalFromContext(p.Context))
				},
			},
			"obtenerCliente": &graphql.Field{
				Type: clienteType,
				Args: idArg,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := stringArg(p, "id")
					if err != nil {
						return nil, err
					}
					return r.Clientes.GetByID(p.Context, auth.PrincipalFromContext(p.Context), id)
				},
			},
			"obtenerPedidos": &graphql.Field{
				Type: graphql.NewList(pedidoType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Pedidos.List(p.Context)
				},
			},
			"obtenerPedidosVendedor": &graphql.Field{
				Type: graphql.NewList(pedidoType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Pedidos.ListByVendedor(p.Context, auth.PrincipalFromContext(p.Context))
				},
			},
			"obtenerPedido": &graphql.Field{
				Type: pedidoType,
				Args: idArg,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := stringArg(p, "id")
					if err != nil {
						return nil, err
					}
					return r.Pedidos.GetByID(p.Context, auth.PrincipalFromContext(p.Context), id)
				},
			},
			"obtenerPedidosEstado": &graphql.Field{
				Type: graphql.NewList(pedidoType),
				Args: graphql.FieldConfigArgument{
					"estado": &graphql.ArgumentConfig{Type: graphql.NewNonNull(estadoEnum)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					estado, err := stringArg(p, "estado")
					if err != nil {
						return nil, err
					}
					return r.Pedidos.ListByEstado(p.Context, auth.PrincipalFromContext(p.Context), estado)
				},
			},
			"mejoresClientes": &graphql.Field{
				Type: graphql.NewList(topClienteType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Analytics.TopClientes(p.Context)
				},
			},
			"mejoresVendedores": &graphql.Field{
				Type: graphql.NewList(topVendedorType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Analytics.TopVendedores(p.Context)
				},
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"nuevoUsuario": &graphql.Field{
				Type: usuarioType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(usuarioInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					var in dto.NuevoUsuarioRequest
					if err := decodeInput(p.Args["input"], &in); err != nil {
						return nil, err
					}
					return r.Auth.Register(p.Context, in)
				},
			},
			"autenticarUsuario": &graphql.Field{
				Type: tokenType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(autenticarInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					var in dto.AutenticarRequest
					if err := decodeInput(p.Args["input"], &in); err != nil {
						return nil, err
					}
					return r.Auth.Login(p.Context, in)
				},
			},
			"nuevoProducto": &graphql.Field{
				Type: productoType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(productoInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					var in dto.ProductoRequest
					if err := decodeInput(p.Args["input"], &in); err != nil {
						return nil, err
					}
					return r.Productos.Create(p.Context, in)
				},
			},
			"actualizarProducto": &graphql.Field{
				Type: productoType,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(actualizarProductoInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := stringArg(p, "id")
					if err != nil {
						return nil, err
					}
					var in dto.ActualizarProductoRequest
					if err := decodeInput(p.Args["input"], &in); err != nil {
						return nil, err
					}
					return r.Productos.Update(p.Context, id, in)
				},
			},
			"eliminarProducto": &graphql.Field{
				Type: graphql.String,
				Args: idArg,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := stringArg(p, "id")
					if err != nil {
						return nil, err
					}
					if err := r.Productos.Delete(p.Context, id); err != nil {
						return nil, err
					}
					return "Producto Eliminado", nil
				},
			},
			"nuevoCliente": &graphql.Field{
				Type: clienteType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(clienteInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					var in dto.ClienteRequest
					if err := decodeInput(p.Args["input"], &in); err != nil {
						return nil, err
					}
					return r.Clientes.Create(p.Context, auth.PrincipalFromContext(p.Context), in)
				},
			},
			"actualizarCliente": &graphql.Field{
				Type: clienteType,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(actualizarClienteInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := stringArg(p, "id")
					if err != nil {
						return nil, err
					}
					var in dto.ActualizarClienteRequest
					if err := decodeInput(p.Args["input"], &in); err != nil {
						return nil, err
					}
					return r.Clientes.Update(p.Context, auth.PrincipalFromContext(p.Context), id, in)
				},
			},
			"eliminarCliente": &graphql.Field{
				Type: graphql.String,
				Args: idArg,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := stringArg(p, "id")
					if err != nil {
						return nil, err
					}
					if err := r.Clientes.Delete(p.Context, auth.PrincipalFromContext(p.Context), id); err != nil {
						return nil, err
					}
					return "Cliente eliminado", nil
				},
			},
			"nuevoPedido": &graphql.Field{
				Type: pedidoType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(pedidoInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					var in dto.NuevoPedidoRequest
					if err := decodeInput(p.Args["input"], &in); err != nil {
						return nil, err
					}
					return r.Pedidos.Create(p.Context, auth.PrincipalFromContext(p.Context), in)
				},
			},
			"actualizarPedido": &graphql.Field{
				Type: pedidoType,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(actualizarPedidoInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := stringArg(p, "id")
					if err != nil {
						return nil, err
					}
					var in dto.ActualizarPedidoRequest
					if err := decodeInput(p.Args["input"], &in); err != nil {
						return nil, err
					}
					return r.Pedidos.Update(p.Context, auth.PrincipalFromContext(p.Context), id, in)
				},
			},
			"eliminarPedido": &graphql.Field{
				Type: graphql.String,
				Args: idArg,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := stringArg(p, "id")
					if err != nil {
						return nil, err
					}
					if err := r.Pedidos.Delete(p.Context, auth.PrincipalFromContext(p.Context), id); err != nil {
						return nil, err
					}
					return "Pedido eliminado", nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: query, Mutation: mutation})
}
