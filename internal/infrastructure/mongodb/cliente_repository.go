package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

type clienteDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Nombre   string             `bson:"nombre"`
	Apellido string             `bson:"apellido"`
	Empresa  string             `bson:"empresa"`
	Email    string             `bson:"email"`
	Telefono string             `bson:"telefono,omitempty"`
	Vendedor primitive.ObjectID `bson:"vendedor"`
	Creado   time.Time          `bson:"creado"`
}

func (d *clienteDoc) toEntity() *entity.Cliente {
	return &entity.Cliente{
		ID:       d.ID.Hex(),
		Nombre:   d.Nombre,
		Apellido: d.Apellido,
		Empresa:  d.Empresa,
		Email:    d.Email,
		Telefono: d.Telefono,
		Vendedor: d.Vendedor.Hex(),
		Creado:   d.Creado,
	}
}

// ClienteRepo implementación de ClienteRepository sobre la colección clientes.
type ClienteRepo struct {
	col *mongo.Collection
}

// NewClienteRepository construye el adaptador.
func NewClienteRepository(db *mongo.Database) *ClienteRepo {
	return &ClienteRepo{col: db.Collection(colClientes)}
}

// Create persiste un cliente nuevo y asigna el ID generado.
func (r *ClienteRepo) Create(ctx context.Context, cliente *entity.Cliente) error {
	vendedor, err := primitive.ObjectIDFromHex(cliente.Vendedor)
	if err != nil {
		return fmt.Errorf("vendedor inválido: %w", domain.ErrInvalidInput)
	}
	doc := clienteDoc{
		Nombre:   cliente.Nombre,
		Apellido: cliente.Apellido,
		Empresa:  cliente.Empresa,
		Email:    cliente.Email,
		Telefono: cliente.Telefono,
		Vendedor: vendedor,
		Creado:   cliente.Creado,
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	cliente.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

// GetByID obtiene un cliente por ID. (nil, nil) si no existe.
func (r *ClienteRepo) GetByID(ctx context.Context, id string) (*entity.Cliente, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var doc clienteDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return doc.toEntity(), nil
}

// GetByEmail obtiene un cliente por email. (nil, nil) si no existe.
func (r *ClienteRepo) GetByEmail(ctx context.Context, email string) (*entity.Cliente, error) {
	var doc clienteDoc
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente por email: %w", err)
	}
	return doc.toEntity(), nil
}

// ListAll lista todos los clientes.
func (r *ClienteRepo) ListAll(ctx context.Context) ([]*entity.Cliente, error) {
	return r.list(ctx, bson.M{})
}

// ListByVendedor lista los clientes de un vendedor.
func (r *ClienteRepo) ListByVendedor(ctx context.Context, vendedorID string) ([]*entity.Cliente, error) {
	oid, err := primitive.ObjectIDFromHex(vendedorID)
	if err != nil {
		return nil, nil
	}
	return r.list(ctx, bson.M{"vendedor": oid})
}

func (r *ClienteRepo) list(ctx context.Context, filter bson.M) ([]*entity.Cliente, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	var docs []clienteDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode clientes: %w", err)
	}
	list := make([]*entity.Cliente, 0, len(docs))
	for i := range docs {
		list = append(list, docs[i].toEntity())
	}
	return list, nil
}

// Update actualiza los campos mutables de un cliente. El campo vendedor
// queda fuera del $set: es inmutable después de la creación.
func (r *ClienteRepo) Update(ctx context.Context, cliente *entity.Cliente) error {
	oid, err := primitive.ObjectIDFromHex(cliente.ID)
	if err != nil {
		return domain.ErrNotFound
	}
	update := bson.M{"$set": bson.M{
		"nombre":   cliente.Nombre,
		"apellido": cliente.Apellido,
		"empresa":  cliente.Empresa,
		"email":    cliente.Email,
		"telefono": cliente.Telefono,
	}}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update cliente: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un cliente por ID.
func (r *ClienteRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
