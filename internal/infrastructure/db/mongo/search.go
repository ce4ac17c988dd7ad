package mongo

import (
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// searchFilter builds the filter for the collection search operation: strict
// is exact equality, lenient is substring containment on string fields.
func searchFilter(key, value string, strict bool) bson.M {
	if strict {
		return bson.M{key: value}
	}
	return bson.M{key: primitive.Regex{Pattern: regexp.QuoteMeta(value)}}
}

// objectID parses a caller-supplied hex ID. The zero value never matches any
// document, which turns malformed IDs into plain not-found results.
func objectID(id string) primitive.ObjectID {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID
	}
	return oid
}

// isNoDocuments reports the driver's empty-result sentinel.
func isNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

func optionsUnique() *options.IndexOptions {
	return options.Index().SetUnique(true)
}
