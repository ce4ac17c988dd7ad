package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/recordkeep/records-api/internal/core/domain"
)

const settingsCollection = "settings"

// settingsKey marks the singleton document; there is never more than one.
const settingsKey = "operational_limits"

// SettingsRepository persists the singleton settings document.
type SettingsRepository struct {
	coll *mongo.Collection
}

func NewSettingsRepository(db *mongo.Database) *SettingsRepository {
	return &SettingsRepository{coll: db.Collection(settingsCollection)}
}

type mongoSettings struct {
	Key                   string   `bson:"key"`
	AllowedFileExtensions []string `bson:"allowed_file_extensions"`
	MaxFileSize           int64    `bson:"max_file_size"`
}

func (r *SettingsRepository) Get(ctx context.Context) (*domain.Settings, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ms mongoSettings
	if err := r.coll.FindOne(ctx, bson.M{"key": settingsKey}).Decode(&ms); err != nil {
		if isNoDocuments(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find settings: %w", err)
	}
	return &domain.Settings{
		AllowedFileExtensions: ms.AllowedFileExtensions,
		MaxFileSize:           ms.MaxFileSize,
	}, nil
}

func (r *SettingsRepository) Put(ctx context.Context, settings domain.Settings) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.ReplaceOne(ctx,
		bson.M{"key": settingsKey},
		mongoSettings{
			Key:                   settingsKey,
			AllowedFileExtensions: settings.AllowedFileExtensions,
			MaxFileSize:           settings.MaxFileSize,
		},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("store settings: %w", err)
	}
	return nil
}
