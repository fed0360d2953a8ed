package mongodb

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo agregaciones de solo lectura sobre la colección pedidos:
// $match COMPLETADO, $group por propietario con $sum del total y $lookup
// del registro propietario. Orden y tope quedan en el caso de uso.
type AnalyticsRepo struct {
	pedidos *mongo.Collection
}

// NewAnalyticsRepository construye el adaptador.
func NewAnalyticsRepository(db *mongo.Database) *AnalyticsRepo {
	return &AnalyticsRepo{pedidos: db.Collection(colPedidos)}
}

type clienteTotalDoc struct {
	Total   float64    `bson:"total"`
	Cliente clienteDoc `bson:"cliente"`
}

type vendedorTotalDoc struct {
	Total    float64    `bson:"total"`
	Vendedor usuarioDoc `bson:"vendedor"`
}

// TotalesPorCliente suma los totales de pedidos COMPLETADOS por cliente y
// une el registro del cliente.
func (r *AnalyticsRepo) TotalesPorCliente(ctx context.Context) ([]repository.ClienteTotal, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "estado", Value: entity.EstadoCompletado}}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$cliente"},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$total"}}},
		}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: colClientes},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "cliente"},
		}}},
		bson.D{{Key: "$unwind", Value: "$cliente"}},
	}
	cur, err := r.pedidos.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("agregación totales por cliente: %w", err)
	}
	var docs []clienteTotalDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode totales por cliente: %w", err)
	}
	rows := make([]repository.ClienteTotal, 0, len(docs))
	for i := range docs {
		rows = append(rows, repository.ClienteTotal{
			Cliente: *docs[i].Cliente.toEntity(),
			Total:   decimal.NewFromFloat(docs[i].Total),
		})
	}
	return rows, nil
}

// TotalesPorVendedor suma los totales de pedidos COMPLETADOS por vendedor y
// une el registro del usuario.
func (r *AnalyticsRepo) TotalesPorVendedor(ctx context.Context) ([]repository.VendedorTotal, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "estado", Value: entity.EstadoCompletado}}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$vendedor"},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$total"}}},
		}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: colUsuarios},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "vendedor"},
		}}},
		bson.D{{Key: "$unwind", Value: "$vendedor"}},
	}
	cur, err := r.pedidos.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("agregación totales por vendedor: %w", err)
	}
	var docs []vendedorTotalDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode totales por vendedor: %w", err)
	}
	rows := make([]repository.VendedorTotal, 0, len(docs))
	for i := range docs {
		rows = append(rows, repository.VendedorTotal{
			Vendedor: *docs[i].Vendedor.toEntity(),
			Total:    decimal.NewFromFloat(docs[i].Total),
		})
	}
	return rows, nil
}
