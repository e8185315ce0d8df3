package service

import (
	"context"
	"fmt"
	"time"

	"pkl-management-backend/app/model"
	"pkl-management-backend/app/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlacementFilter adalah filter opsional untuk daftar placement (kosong = tidak difilter).
type PlacementFilter struct {
	StudentID string
	Status    string
}

func (f PlacementFilter) toFilter() repository.Filter {
	filter := repository.Filter{}
	if f.StudentID != "" {
		filter["student_id"] = f.StudentID
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	return filter
}

// PlacementService mengelola alur pengajuan penempatan PKL.
type PlacementService interface {
	Create(ctx context.Context, placement *model.Placement) (string, error)
	List(ctx context.Context, filter PlacementFilter) ([]model.Placement, error)
	// Update menerapkan perubahan parsial. Tidak ada pengecekan transisi status.
	Update(ctx context.Context, id string, update model.PlacementUpdate) (repository.UpdateResult, error)
}

type placementService struct {
	store repository.DocumentStore
	now   func() time.Time
}

func NewPlacementService(store repository.DocumentStore) PlacementService {
	return &placementService{store: store, now: time.Now}
}

// Create menyimpan placement baru dengan status awal "applied" bila tidak diisi.
func (s *placementService) Create(ctx context.Context, placement *model.Placement) (string, error) {
	placement.ID = primitive.NilObjectID
	placement.CreatedAt = s.now().UTC()
	placement.UpdatedAt = nil
	return createRecord(ctx, s.store, model.KindPlacement, placement)
}

func (s *placementService) List(ctx context.Context, filter PlacementFilter) ([]model.Placement, error) {
	return listRecords[model.Placement](ctx, s.store, model.KindPlacement, filter.toFilter())
}

func (s *placementService) Update(ctx context.Context, id string, update model.PlacementUpdate) (repository.UpdateResult, error) {
	// id dicek dulu: id rusak selalu 400 walau body juga salah
	if !primitive.IsValidObjectID(id) {
		return repository.UpdateResult{}, fmt.Errorf("%w: %q", repository.ErrInvalidID, id)
	}
	if err := model.Validate(model.KindPlacement, &update); err != nil {
		return repository.UpdateResult{}, err
	}
	return s.store.UpdateFields(ctx, model.CollectionFor(model.KindPlacement), id, update.Fields())
}
