package service

import (
	"context"
	"errors"

	"pkl-management-backend/app/model"
	"pkl-management-backend/app/repository"
)

var (
	ErrDuplicateEmail = errors.New("Email sudah terdaftar")
	ErrUserNotFound   = errors.New("Akun tidak ditemukan")
)

// defaulter diimplementasikan record yang punya nilai default (status awal, dll).
type defaulter interface {
	ApplyDefaults()
}

// createRecord: isi default -> validasi skema -> simpan ke collection milik kind.
func createRecord(ctx context.Context, store repository.DocumentStore, kind model.Kind, rec model.Record) (string, error) {
	if d, ok := rec.(defaulter); ok {
		d.ApplyDefaults()
	}
	if err := model.Validate(kind, rec); err != nil {
		return "", err
	}
	return store.Create(ctx, model.CollectionFor(kind), rec)
}

// listRecords mengambil semua record kind yang cocok dengan filter. Hasil tidak pernah nil.
func listRecords[T any](ctx context.Context, store repository.DocumentStore, kind model.Kind, filter repository.Filter) ([]T, error) {
	var out []T
	if err := store.Find(ctx, model.CollectionFor(kind), filter, 0, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}
