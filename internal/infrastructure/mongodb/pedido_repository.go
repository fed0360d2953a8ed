package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.PedidoRepository = (*PedidoRepo)(nil)

type pedidoItemDoc struct {
	Producto primitive.ObjectID `bson:"producto"`
	Cantidad int                `bson:"cantidad"`
	Nombre   string             `bson:"nombre"`
	Precio   float64            `bson:"precio"`
}

type pedidoDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Items    []pedidoItemDoc    `bson:"pedido"`
	Total    float64            `bson:"total"`
	Cliente  primitive.ObjectID `bson:"cliente"`
	Vendedor primitive.ObjectID `bson:"vendedor"`
	Estado   string             `bson:"estado"`
	Creado   time.Time          `bson:"creado"`
}

func (d *pedidoDoc) toEntity() *entity.Pedido {
	items := make([]entity.PedidoItem, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, entity.PedidoItem{
			ProductoID: it.Producto.Hex(),
			Cantidad:   it.Cantidad,
			Nombre:     it.Nombre,
			Precio:     decimal.NewFromFloat(it.Precio),
		})
	}
	return &entity.Pedido{
		ID:        d.ID.Hex(),
		Items:     items,
		Total:     decimal.NewFromFloat(d.Total),
		ClienteID: d.Cliente.Hex(),
		Vendedor:  d.Vendedor.Hex(),
		Estado:    d.Estado,
		Creado:    d.Creado,
	}
}

func toPedidoDoc(p *entity.Pedido) (*pedidoDoc, error) {
	cliente, err := primitive.ObjectIDFromHex(p.ClienteID)
	if err != nil {
		return nil, fmt.Errorf("cliente inválido: %w", domain.ErrInvalidInput)
	}
	vendedor, err := primitive.ObjectIDFromHex(p.Vendedor)
	if err != nil {
		return nil, fmt.Errorf("vendedor inválido: %w", domain.ErrInvalidInput)
	}
	items := make([]pedidoItemDoc, 0, len(p.Items))
	for _, it := range p.Items {
		producto, err := primitive.ObjectIDFromHex(it.ProductoID)
		if err != nil {
			return nil, fmt.Errorf("producto inválido: %w", domain.ErrInvalidInput)
		}
		items = append(items, pedidoItemDoc{
			Producto: producto,
			Cantidad: it.Cantidad,
			Nombre:   it.Nombre,
			Precio:   it.Precio.InexactFloat64(),
		})
	}
	return &pedidoDoc{
		Items:    items,
		Total:    p.Total.InexactFloat64(),
		Cliente:  cliente,
		Vendedor: vendedor,
		Estado:   p.Estado,
		Creado:   p.Creado,
	}, nil
}

// PedidoRepo implementación de PedidoRepository sobre la colección pedidos.
type PedidoRepo struct {
	col *mongo.Collection
}

// NewPedidoRepository construye el adaptador.
func NewPedidoRepository(db *mongo.Database) *PedidoRepo {
	return &PedidoRepo{col: db.Collection(colPedidos)}
}

// Create persiste un pedido nuevo y asigna el ID generado.
func (r *PedidoRepo) Create(ctx context.Context, pedido *entity.Pedido) error {
	doc, err := toPedidoDoc(pedido)
	if err != nil {
		return err
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert pedido: %w", err)
	}
	pedido.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

// GetByID obtiene un pedido por ID. (nil, nil) si no existe.
func (r *PedidoRepo) GetByID(ctx context.Context, id string) (*entity.Pedido, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var doc pedidoDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido: %w", err)
	}
	return doc.toEntity(), nil
}

// ListAll lista todos los pedidos.
func (r *PedidoRepo) ListAll(ctx context.Context) ([]*entity.Pedido, error) {
	return r.list(ctx, bson.M{})
}

// ListByVendedor lista los pedidos de un vendedor.
func (r *PedidoRepo) ListByVendedor(ctx context.Context, vendedorID string) ([]*entity.Pedido, error) {
	oid, err := primitive.ObjectIDFromHex(vendedorID)
	if err != nil {
		return nil, nil
	}
	return r.list(ctx, bson.M{"vendedor": oid})
}

// ListByVendedorAndEstado lista los pedidos de un vendedor filtrados por estado.
func (r *PedidoRepo) ListByVendedorAndEstado(ctx context.Context, vendedorID, estado string) ([]*entity.Pedido, error) {
	oid, err := primitive.ObjectIDFromHex(vendedorID)
	if err != nil {
		return nil, nil
	}
	return r.list(ctx, bson.M{"vendedor": oid, "estado": estado})
}

func (r *PedidoRepo) list(ctx context.Context, filter bson.M) ([]*entity.Pedido, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list pedidos: %w", err)
	}
	var docs []pedidoDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode pedidos: %w", err)
	}
	list := make([]*entity.Pedido, 0, len(docs))
	for i := range docs {
		list = append(list, docs[i].toEntity())
	}
	return list, nil
}

// Update reemplaza los campos mutables de un pedido. El vendedor no entra
// al $set: es inmutable después de la creación.
func (r *PedidoRepo) Update(ctx context.Context, pedido *entity.Pedido) error {
	oid, err := primitive.ObjectIDFromHex(pedido.ID)
	if err != nil {
		return domain.ErrNotFound
	}
	doc, err := toPedidoDoc(pedido)
	if err != nil {
		return err
	}
	update := bson.M{"$set": bson.M{
		"pedido":  doc.Items,
		"total":   doc.Total,
		"cliente": doc.Cliente,
		"estado":  doc.Estado,
	}}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update pedido: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un pedido por ID.
func (r *PedidoRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete pedido: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
