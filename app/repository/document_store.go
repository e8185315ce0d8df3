package repository

import (
	"context"
	"fmt"
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Filter adalah pencocokan persis: nama field -> nilai yang harus sama.
type Filter map[string]any

func (f Filter) bson() bson.M {
	m := bson.M{}
	for k, v := range f {
		m[k] = v
	}
	return m
}

// UpdateResult adalah hasil UpdateFields.
type UpdateResult struct {
	Matched  bool
	Modified bool
}

// DocumentStore adalah operasi CRUD generik per collection.
// Ini satu-satunya komponen yang menyentuh database.
type DocumentStore interface {
	// Create menyimpan record dan mengembalikan id (hex ObjectID) yang dibuat database.
	Create(ctx context.Context, collection string, record any) (string, error)

	// Find mendekode dokumen yang cocok dengan filter ke out (pointer ke slice).
	// Filter kosong berarti semua dokumen; limit <= 0 berarti tanpa batas.
	Find(ctx context.Context, collection string, filter Filter, limit int64, out any) error

	// UpdateFields melakukan $set parsial + stempel updated_at.
	UpdateFields(ctx context.Context, collection, id string, fields map[string]any) (UpdateResult, error)

	// CollectionNames mendaftar collection yang ada di database.
	CollectionNames(ctx context.Context) ([]string, error)

	// Available melaporkan apakah koneksi database tersedia.
	Available() bool
}

type mongoStore struct {
	db *mongo.Database
}

// NewDocumentStore membuat DocumentStore di atas database MongoDB.
// db boleh nil: semua operasi akan gagal dengan ErrStorageUnavailable.
func NewDocumentStore(db *mongo.Database) DocumentStore {
	return &mongoStore{db: db}
}

func (s *mongoStore) Available() bool {
	return s.db != nil
}

func (s *mongoStore) Create(ctx context.Context, collection string, record any) (string, error) {
	if s.db == nil {
		return "", ErrStorageUnavailable
	}

	res, err := s.db.Collection(collection).InsertOne(ctx, record)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", fmt.Errorf("%w: %s", ErrDuplicateKey, collection)
		}
		return "", &BackendError{Op: OpWrite, Collection: collection, Cause: err}
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", &BackendError{Op: OpWrite, Collection: collection, Cause: fmt.Errorf("insert mengembalikan id non-ObjectID")}
	}
	return oid.Hex(), nil
}

func (s *mongoStore) Find(ctx context.Context, collection string, filter Filter, limit int64, out any) error {
	if s.db == nil {
		return ErrStorageUnavailable
	}

	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := s.db.Collection(collection).Find(ctx, filter.bson(), opts)
	if err != nil {
		return &BackendError{Op: OpRead, Collection: collection, Cause: err}
	}
	if err := cur.All(ctx, out); err != nil {
		return &BackendError{Op: OpRead, Collection: collection, Cause: err}
	}
	return nil
}

func (s *mongoStore) UpdateFields(ctx context.Context, collection, id string, fields map[string]any) (UpdateResult, error) {
	if s.db == nil {
		return UpdateResult{}, ErrStorageUnavailable
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return UpdateResult{}, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	set := PruneNil(fields)
	if len(set) == 0 {
		return UpdateResult{}, nil
	}

	res, err := s.db.Collection(collection).UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{
			"$set":         set,
			"$currentDate": bson.M{"updated_at": true},
		},
	)
	if err != nil {
		return UpdateResult{}, &BackendError{Op: OpWrite, Collection: collection, Cause: err}
	}
	if res.MatchedCount == 0 {
		return UpdateResult{}, fmt.Errorf("%w: %s/%s", ErrNotFound, collection, id)
	}
	return UpdateResult{Matched: true, Modified: res.ModifiedCount > 0}, nil
}

func (s *mongoStore) CollectionNames(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, ErrStorageUnavailable
	}
	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, &BackendError{Op: OpRead, Collection: "$collections", Cause: err}
	}
	return names, nil
}

// PruneNil membuang entri bernilai nil (termasuk pointer/map/slice nil).
func PruneNil(fields map[string]any) bson.M {
	set := bson.M{}
	for k, v := range fields {
		if isNil(v) {
			continue
		}
		set[k] = v
	}
	return set
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
