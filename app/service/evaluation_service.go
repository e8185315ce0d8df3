package service

import (
	"context"
	"math"

	"pkl-management-backend/app/model"
	"pkl-management-backend/app/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Bobot rubrik penilaian standar.
const (
	weightTeknis     = 0.4
	weightDisiplin   = 0.2
	weightSoftSkills = 0.2
	weightLaporan    = 0.2
)

// ComputeTotal menghitung nilai akhir berbobot 40/20/20/20, dibulatkan 2 desimal.
func ComputeTotal(teknis, disiplin, softSkills, laporan float64) float64 {
	total := weightTeknis*teknis + weightDisiplin*disiplin + weightSoftSkills*softSkills + weightLaporan*laporan
	return math.Round(total*100) / 100
}

type EvaluationService interface {
	// Create menyimpan penilaian. Total dari client selalu ditimpa hasil hitungan server.
	Create(ctx context.Context, ev *model.Evaluation) (id string, total float64, err error)
	List(ctx context.Context, placementID string) ([]model.Evaluation, error)
}

type evaluationService struct {
	store repository.DocumentStore
}

func NewEvaluationService(store repository.DocumentStore) EvaluationService {
	return &evaluationService{store: store}
}

func (s *evaluationService) Create(ctx context.Context, ev *model.Evaluation) (string, float64, error) {
	ev.ID = primitive.NilObjectID
	ev.Total = nil
	// validasi dulu: sub-skor wajib ada sebelum bisa dihitung
	if err := model.Validate(model.KindEvaluation, ev); err != nil {
		return "", 0, err
	}

	total := ComputeTotal(*ev.Teknis, *ev.Disiplin, *ev.SoftSkills, *ev.Laporan)
	ev.Total = &total

	id, err := s.store.Create(ctx, model.CollectionFor(model.KindEvaluation), ev)
	if err != nil {
		return "", 0, err
	}
	return id, total, nil
}

func (s *evaluationService) List(ctx context.Context, placementID string) ([]model.Evaluation, error) {
	return listRecords[model.Evaluation](ctx, s.store, model.KindEvaluation, byPlacement(placementID))
}

func byPlacement(placementID string) repository.Filter {
	if placementID == "" {
		return nil
	}
	return repository.Filter{"placement_id": placementID}
}
