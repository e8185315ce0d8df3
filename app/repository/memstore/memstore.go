// Package memstore menyediakan DocumentStore di memori untuk pengujian.
// Semantik filter, update, dan error disamakan dengan implementasi MongoDB.
package memstore

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"
	"time"

	"pkl-management-backend/app/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Store struct {
	mu      sync.Mutex
	docs    map[string][]bson.M
	unique  map[string][]string
	writes  int
	down    bool
	nowFunc func() time.Time
}

var _ repository.DocumentStore = &Store{}

func New() *Store {
	return &Store{
		docs:    map[string][]bson.M{},
		unique:  map[string][]string{},
		nowFunc: time.Now,
	}
}

// Down membuat store yang selalu gagal dengan ErrStorageUnavailable.
func Down() *Store {
	s := New()
	s.down = true
	return s
}

// UniqueIndex meniru unique index: insert dengan nilai field yang sama ditolak ErrDuplicateKey.
func (s *Store) UniqueIndex(collection, field string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unique[collection] = append(s.unique[collection], field)
}

// SetClock mengganti sumber waktu untuk stempel updated_at.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nowFunc = now
}

// Writes menghitung operasi tulis yang benar-benar menyentuh data.
func (s *Store) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

// Docs mengembalikan salinan dokumen mentah di collection.
func (s *Store) Docs(collection string) []bson.M {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]bson.M, 0, len(s.docs[collection]))
	for _, d := range s.docs[collection] {
		out = append(out, clone(d))
	}
	return out
}

func (s *Store) Available() bool {
	return !s.down
}

func (s *Store) Create(ctx context.Context, collection string, record any) (string, error) {
	if s.down {
		return "", repository.ErrStorageUnavailable
	}
	doc, err := normalize(record)
	if err != nil {
		return "", &repository.BackendError{Op: repository.OpWrite, Collection: collection, Cause: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, field := range s.unique[collection] {
		for _, existing := range s.docs[collection] {
			if v, ok := doc[field]; ok && reflect.DeepEqual(existing[field], v) {
				return "", fmt.Errorf("%w: %s", repository.ErrDuplicateKey, collection)
			}
		}
	}

	oid, ok := doc["_id"].(primitive.ObjectID)
	if !ok || oid.IsZero() {
		oid = primitive.NewObjectID()
		doc["_id"] = oid
	}
	s.docs[collection] = append(s.docs[collection], doc)
	s.writes++
	return oid.Hex(), nil
}

func (s *Store) Find(ctx context.Context, collection string, filter repository.Filter, limit int64, out any) error {
	if s.down {
		return repository.ErrStorageUnavailable
	}
	want := bson.M{}
	if len(filter) > 0 {
		var err error
		if want, err = normalize(map[string]any(filter)); err != nil {
			return &repository.BackendError{Op: repository.OpRead, Collection: collection, Cause: err}
		}
	}

	s.mu.Lock()
	var matched []bson.M
	for _, d := range s.docs[collection] {
		if limit > 0 && int64(len(matched)) >= limit {
			break
		}
		if matches(d, want) {
			matched = append(matched, clone(d))
		}
	}
	s.mu.Unlock()

	if err := decodeInto(matched, out); err != nil {
		return &repository.BackendError{Op: repository.OpRead, Collection: collection, Cause: err}
	}
	return nil
}

func (s *Store) UpdateFields(ctx context.Context, collection, id string, fields map[string]any) (repository.UpdateResult, error) {
	if s.down {
		return repository.UpdateResult{}, repository.ErrStorageUnavailable
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.UpdateResult{}, fmt.Errorf("%w: %q", repository.ErrInvalidID, id)
	}
	set := repository.PruneNil(fields)
	if len(set) == 0 {
		return repository.UpdateResult{}, nil
	}
	values, err := normalize(set)
	if err != nil {
		return repository.UpdateResult{}, &repository.BackendError{Op: repository.OpWrite, Collection: collection, Cause: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.docs[collection] {
		if d["_id"] != oid {
			continue
		}
		for k, v := range values {
			d[k] = v
		}
		d["updated_at"] = primitive.NewDateTimeFromTime(s.nowFunc().UTC())
		s.writes++
		return repository.UpdateResult{Matched: true, Modified: true}, nil
	}
	return repository.UpdateResult{}, fmt.Errorf("%w: %s/%s", repository.ErrNotFound, collection, id)
}

func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	if s.down {
		return nil, repository.ErrStorageUnavailable
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.docs))
	for name := range s.docs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// normalize melewatkan v lewat encoder BSON supaya tipe nilainya sama dengan yang disimpan MongoDB.
func normalize(v any) (bson.M, error) {
	if v == nil {
		return bson.M{}, nil
	}
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	doc := bson.M{}
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func matches(doc, want bson.M) bool {
	for k, v := range want {
		got, ok := doc[k]
		if !ok || !reflect.DeepEqual(got, v) {
			return false
		}
	}
	return true
}

func clone(d bson.M) bson.M {
	c := make(bson.M, len(d))
	for k, v := range d {
		c[k] = v
	}
	return c
}

func decodeInto(docs []bson.M, out any) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Slice {
		return errors.New("memstore: out harus pointer ke slice")
	}
	slice := rv.Elem()
	elemType := slice.Type().Elem()
	result := reflect.MakeSlice(slice.Type(), 0, len(docs))
	for _, d := range docs {
		raw, err := bson.Marshal(d)
		if err != nil {
			return err
		}
		elem := reflect.New(elemType)
		if err := bson.Unmarshal(raw, elem.Interface()); err != nil {
			return err
		}
		result = reflect.Append(result, elem.Elem())
	}
	slice.Set(result)
	return nil
}
