package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

type productoDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Nombre         string             `bson:"nombre"`
	NombreBusqueda string             `bson:"nombre_busqueda"`
	Existencia     int                `bson:"existencia"`
	Precio         float64            `bson:"precio"`
	Creado         time.Time          `bson:"creado"`
}

func (d *productoDoc) toEntity() *entity.Producto {
	return &entity.Producto{
		ID:         d.ID.Hex(),
		Nombre:     d.Nombre,
		Existencia: d.Existencia,
		Precio:     decimal.NewFromFloat(d.Precio),
		Creado:     d.Creado,
	}
}

// ProductoRepo implementación de ProductoRepository sobre la colección
// productos. Mantiene nombre_busqueda plegado para la búsqueda sin tildes.
type ProductoRepo struct {
	col *mongo.Collection
}

// NewProductoRepository construye el adaptador.
func NewProductoRepository(db *mongo.Database) *ProductoRepo {
	return &ProductoRepo{col: db.Collection(colProductos)}
}

// Create persiste un producto nuevo y asigna el ID generado.
func (r *ProductoRepo) Create(ctx context.Context, producto *entity.Producto) error {
	doc := productoDoc{
		Nombre:         producto.Nombre,
		NombreBusqueda: foldText(producto.Nombre),
		Existencia:     producto.Existencia,
		Precio:         producto.Precio.InexactFloat64(),
		Creado:         producto.Creado,
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert producto: %w", err)
	}
	producto.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

// GetByID obtiene un producto por ID. (nil, nil) si no existe.
func (r *ProductoRepo) GetByID(ctx context.Context, id string) (*entity.Producto, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var doc productoDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return doc.toEntity(), nil
}

// ListAll lista todos los productos.
func (r *ProductoRepo) ListAll(ctx context.Context) ([]*entity.Producto, error) {
	return r.list(ctx, bson.M{}, nil)
}

// Search busca por nombre plegado (sin mayúsculas ni tildes), limitado a limit.
func (r *ProductoRepo) Search(ctx context.Context, texto string, limit int) ([]*entity.Producto, error) {
	pattern := regexp.QuoteMeta(foldText(texto))
	filter := bson.M{"nombre_busqueda": primitive.Regex{Pattern: pattern}}
	return r.list(ctx, filter, options.Find().SetLimit(int64(limit)))
}

func (r *ProductoRepo) list(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*entity.Producto, error) {
	var cur *mongo.Cursor
	var err error
	if opts != nil {
		cur, err = r.col.Find(ctx, filter, opts)
	} else {
		cur, err = r.col.Find(ctx, filter)
	}
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	var docs []productoDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode productos: %w", err)
	}
	list := make([]*entity.Producto, 0, len(docs))
	for i := range docs {
		list = append(list, docs[i].toEntity())
	}
	return list, nil
}

// Update actualiza un producto, incluido el nombre plegado de búsqueda.
func (r *ProductoRepo) Update(ctx context.Context, producto *entity.Producto) error {
	oid, err := primitive.ObjectIDFromHex(producto.ID)
	if err != nil {
		return domain.ErrNotFound
	}
	update := bson.M{"$set": bson.M{
		"nombre":          producto.Nombre,
		"nombre_busqueda": foldText(producto.Nombre),
		"existencia":      producto.Existencia,
		"precio":          producto.Precio.InexactFloat64(),
	}}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductoRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DecrementStock resta cantidad en una única escritura condicional: el
// filtro exige existencia >= cantidad, así dos pedidos concurrentes nunca
// pasan la verificación sobre las mismas unidades.
func (r *ProductoRepo) DecrementStock(ctx context.Context, id string, cantidad int) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": oid, "existencia": bson.M{"$gte": cantidad}},
		bson.M{"$inc": bson.M{"existencia": -cantidad}},
	)
	if err != nil {
		return fmt.Errorf("decrementar existencia: %w", err)
	}
	if res.MatchedCount == 0 {
		// distinguir producto inexistente de existencia insuficiente
		n, err := r.col.CountDocuments(ctx, bson.M{"_id": oid})
		if err != nil {
			return fmt.Errorf("verificar producto: %w", err)
		}
		if n == 0 {
			return domain.ErrNotFound
		}
		return domain.ErrInsufficientStock
	}
	return nil
}

// IncrementStock devuelve cantidad a la existencia (compensación de un
// decremento ya aplicado).
func (r *ProductoRepo) IncrementStock(ctx context.Context, id string, cantidad int) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$inc": bson.M{"existencia": cantidad}},
	)
	if err != nil {
		return fmt.Errorf("incrementar existencia: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
