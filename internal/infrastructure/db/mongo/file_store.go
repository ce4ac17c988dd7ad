package mongo

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"

	"github.com/recordkeep/records-api/internal/core/domain"
)

// FileStore stores uploads in a GridFS bucket (fs.files / fs.chunks).
type FileStore struct {
	bucket *gridfs.Bucket
}

func NewFileStore(db *mongo.Database) (*FileStore, error) {
	bucket, err := gridfs.NewBucket(db)
	if err != nil {
		return nil, fmt.Errorf("gridfs bucket: %w", err)
	}
	return &FileStore{bucket: bucket}, nil
}

// Save streams r into the bucket under name and returns the stored file ID.
func (s *FileStore) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	id, err := s.bucket.UploadFromStream(name, r)
	if err != nil {
		return "", fmt.Errorf("gridfs upload: %w", err)
	}
	return id.Hex(), nil
}

// Open returns a stream over the newest revision stored under name.
func (s *FileStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	stream, err := s.bucket.OpenDownloadStreamByName(name)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("gridfs open: %w", err)
	}
	return stream, nil
}

// Exists reports whether any revision is stored under name.
func (s *FileStore) Exists(ctx context.Context, name string) (bool, error) {
	cursor, err := s.bucket.FindContext(ctx, bson.M{"filename": name})
	if err != nil {
		return false, fmt.Errorf("gridfs find: %w", err)
	}
	defer cursor.Close(ctx)
	return cursor.Next(ctx), nil
}

// DeleteByName removes every revision stored under name, chunks included.
func (s *FileStore) DeleteByName(ctx context.Context, name string) error {
	cursor, err := s.bucket.FindContext(ctx, bson.M{"filename": name})
	if err != nil {
		return fmt.Errorf("gridfs find: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var file struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cursor.Decode(&file); err != nil {
			return fmt.Errorf("gridfs decode: %w", err)
		}
		if err := s.bucket.DeleteContext(ctx, file.ID); err != nil && !errors.Is(err, gridfs.ErrFileNotFound) {
			return fmt.Errorf("gridfs delete: %w", err)
		}
	}
	return cursor.Err()
}

// DeleteByID removes a single stored file by its hex ID.
func (s *FileStore) DeleteByID(ctx context.Context, id string) error {
	if err := s.bucket.DeleteContext(ctx, objectID(id)); err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("gridfs delete: %w", err)
	}
	return nil
}
