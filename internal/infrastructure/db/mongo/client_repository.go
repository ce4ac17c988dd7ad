package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/recordkeep/records-api/internal/core/domain"
)

const clientsCollection = "clients"

// ClientRepository persists client records in the clients collection.
type ClientRepository struct {
	coll *mongo.Collection
}

func NewClientRepository(db *mongo.Database) *ClientRepository {
	return &ClientRepository{coll: db.Collection(clientsCollection)}
}

type mongoClient struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	BusinessID string             `bson:"id"`
	UserID     string             `bson:"user"`
	Name       string             `bson:"name"`
	Phone      string             `bson:"phone"`
	Email      string             `bson:"email"`
	Address    string             `bson:"address"`
	Bills      []string           `bson:"bills"`
}

func (r *ClientRepository) Get(ctx context.Context) ([]domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer cursor.Close(ctx)

	clients := []domain.Client{}
	for cursor.Next(ctx) {
		var mc mongoClient
		if err := cursor.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode client: %w", err)
		}
		clients = append(clients, mc.toDomain())
	}
	return clients, cursor.Err()
}

func (r *ClientRepository) Find(ctx context.Context, id string) (*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mc mongoClient
	if err := r.coll.FindOne(ctx, bson.M{"_id": objectID(id)}).Decode(&mc); err != nil {
		if isNoDocuments(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find client: %w", err)
	}
	client := mc.toDomain()
	return &client, nil
}

func (r *ClientRepository) Search(ctx context.Context, key, value string, strict bool) ([]domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, searchFilter(key, value, strict))
	if err != nil {
		return nil, fmt.Errorf("search clients: %w", err)
	}
	defer cursor.Close(ctx)

	clients := []domain.Client{}
	for cursor.Next(ctx) {
		var mc mongoClient
		if err := cursor.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode client: %w", err)
		}
		clients = append(clients, mc.toDomain())
	}
	return clients, cursor.Err()
}

func (r *ClientRepository) Insert(ctx context.Context, client *domain.Client) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, fromDomainClient(client))
	if err != nil {
		return "", fmt.Errorf("insert client: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *ClientRepository) Update(ctx context.Context, id string, client *domain.Client) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": objectID(id)}, fromDomainClient(client))
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

func (r *ClientRepository) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": objectID(id)})
	if err != nil {
		return false, fmt.Errorf("delete client: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func fromDomainClient(c *domain.Client) mongoClient {
	bills := c.Bills
	if bills == nil {
		bills = []string{}
	}
	return mongoClient{
		BusinessID: c.BusinessID,
		UserID:     c.UserID,
		Name:       c.Name,
		Phone:      c.Phone,
		Email:      c.Email,
		Address:    c.Address,
		Bills:      bills,
	}
}

func (mc mongoClient) toDomain() domain.Client {
	return domain.Client{
		ID:         mc.ID.Hex(),
		BusinessID: mc.BusinessID,
		UserID:     mc.UserID,
		Name:       mc.Name,
		Phone:      mc.Phone,
		Email:      mc.Email,
		Address:    mc.Address,
		Bills:      mc.Bills,
	}
}
