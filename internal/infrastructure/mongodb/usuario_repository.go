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

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// usuarioDoc documento persistido; los ObjectID no salen de este paquete.
type usuarioDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Nombre   string             `bson:"nombre"`
	Apellido string             `bson:"apellido"`
	Email    string             `bson:"email"`
	Password string             `bson:"password"`
	Creado   time.Time          `bson:"creado"`
}

func (d *usuarioDoc) toEntity() *entity.Usuario {
	return &entity.Usuario{
		ID:           d.ID.Hex(),
		Nombre:       d.Nombre,
		Apellido:     d.Apellido,
		Email:        d.Email,
		PasswordHash: d.Password,
		Creado:       d.Creado,
	}
}

// UsuarioRepo implementación de UsuarioRepository sobre la colección usuarios.
type UsuarioRepo struct {
	col *mongo.Collection
}

// NewUsuarioRepository construye el adaptador.
func NewUsuarioRepository(db *mongo.Database) *UsuarioRepo {
	return &UsuarioRepo{col: db.Collection(colUsuarios)}
}

// Create persiste un usuario nuevo y asigna el ID generado.
func (r *UsuarioRepo) Create(ctx context.Context, usuario *entity.Usuario) error {
	doc := usuarioDoc{
		Nombre:   usuario.Nombre,
		Apellido: usuario.Apellido,
		Email:    usuario.Email,
		Password: usuario.PasswordHash,
		Creado:   usuario.Creado,
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	usuario.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

// GetByID obtiene un usuario por ID. (nil, nil) si no existe.
func (r *UsuarioRepo) GetByID(ctx context.Context, id string) (*entity.Usuario, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil // un ID malformado no referencia ningún documento
	}
	var doc usuarioDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return doc.toEntity(), nil
}

// GetByEmail obtiene un usuario por email. (nil, nil) si no existe.
func (r *UsuarioRepo) GetByEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	var doc usuarioDoc
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario por email: %w", err)
	}
	return doc.toEntity(), nil
}
