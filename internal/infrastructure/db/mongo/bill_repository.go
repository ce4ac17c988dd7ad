package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/recordkeep/records-api/internal/core/domain"
)

const billsCollection = "bills"

// BillRepository persists bill records in the bills collection.
type BillRepository struct {
	coll *mongo.Collection
}

func NewBillRepository(db *mongo.Database) *BillRepository {
	return &BillRepository{coll: db.Collection(billsCollection)}
}

type mongoBill struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Ref         string             `bson:"ref"`
	UserID      string             `bson:"user"`
	Date        string             `bson:"date"`
	Type        string             `bson:"type"`
	Description string             `bson:"description"`
	File        string             `bson:"file"`
	ClientID    string             `bson:"client"`
}

func (r *BillRepository) Get(ctx context.Context) ([]domain.Bill, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	defer cursor.Close(ctx)

	bills := []domain.Bill{}
	for cursor.Next(ctx) {
		var mb mongoBill
		if err := cursor.Decode(&mb); err != nil {
			return nil, fmt.Errorf("decode bill: %w", err)
		}
		bills = append(bills, mb.toDomain())
	}
	return bills, cursor.Err()
}

func (r *BillRepository) Find(ctx context.Context, id string) (*domain.Bill, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mb mongoBill
	if err := r.coll.FindOne(ctx, bson.M{"_id": objectID(id)}).Decode(&mb); err != nil {
		if isNoDocuments(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find bill: %w", err)
	}
	bill := mb.toDomain()
	return &bill, nil
}

func (r *BillRepository) Search(ctx context.Context, key, value string, strict bool) ([]domain.Bill, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, searchFilter(key, value, strict))
	if err != nil {
		return nil, fmt.Errorf("search bills: %w", err)
	}
	defer cursor.Close(ctx)

	bills := []domain.Bill{}
	for cursor.Next(ctx) {
		var mb mongoBill
		if err := cursor.Decode(&mb); err != nil {
			return nil, fmt.Errorf("decode bill: %w", err)
		}
		bills = append(bills, mb.toDomain())
	}
	return bills, cursor.Err()
}

func (r *BillRepository) Insert(ctx context.Context, bill *domain.Bill) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, mongoBill{
		Ref:         bill.Ref,
		UserID:      bill.UserID,
		Date:        bill.Date,
		Type:        bill.Type,
		Description: bill.Description,
		File:        bill.File,
		ClientID:    bill.ClientID,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", domain.ErrAlreadyExists
		}
		return "", fmt.Errorf("insert bill: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *BillRepository) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": objectID(id)})
	if err != nil {
		return false, fmt.Errorf("delete bill: %w", err)
	}
	return res.DeletedCount > 0, nil
}

// EnsureIndexes creates the unique ref index.
func (r *BillRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "ref", Value: 1}},
		Options: optionsUnique(),
	})
	return err
}

func (mb mongoBill) toDomain() domain.Bill {
	return domain.Bill{
		ID:          mb.ID.Hex(),
		Ref:         mb.Ref,
		UserID:      mb.UserID,
		Date:        mb.Date,
		Type:        mb.Type,
		Description: mb.Description,
		File:        mb.File,
		ClientID:    mb.ClientID,
	}
}
