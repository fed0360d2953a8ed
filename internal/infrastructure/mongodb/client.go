package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Nombres de colecciones.
const (
	colUsuarios  = "usuarios"
	colClientes  = "clientes"
	colProductos = "productos"
	colPedidos   = "pedidos"
)

// Config conexión al almacén de documentos.
type Config struct {
	URI      string
	Database string
}

// Connect abre el cliente y verifica la conexión con un ping. El arranque
// de la aplicación es fatal si esto falla.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("conectar a mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping a mongodb: %w", err)
	}
	return client, nil
}

// EnsureIndexes crea los índices que el dominio asume: email único en
// usuarios y clientes, y el campo de búsqueda plegado de productos.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	if _, err := db.Collection(colUsuarios).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}}, Options: unique,
	}); err != nil {
		return fmt.Errorf("índice usuarios.email: %w", err)
	}
	if _, err := db.Collection(colClientes).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}}, Options: unique,
	}); err != nil {
		return fmt.Errorf("índice clientes.email: %w", err)
	}
	if _, err := db.Collection(colProductos).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "nombre_busqueda", Value: 1}},
	}); err != nil {
		return fmt.Errorf("índice productos.nombre_busqueda: %w", err)
	}
	return nil
}
