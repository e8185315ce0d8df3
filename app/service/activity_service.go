package service

import (
	"context"
	"time"

	"pkl-management-backend/app/model"
	"pkl-management-backend/app/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityService mencatat logbook harian dan presensi mahasiswa PKL.
type ActivityService interface {
	CreateLog(ctx context.Context, log *model.Log) (string, error)
	ListLogs(ctx context.Context, placementID string) ([]model.Log, error)
	CreateAttendance(ctx context.Context, att *model.Attendance) (string, error)
	ListAttendance(ctx context.Context, placementID string) ([]model.Attendance, error)
}

type activityService struct {
	store repository.DocumentStore
	now   func() time.Time
}

func NewActivityService(store repository.DocumentStore) ActivityService {
	return &activityService{store: store, now: time.Now}
}

// CreateLog mengisi uploaded_at dengan waktu server bila kosong.
func (s *activityService) CreateLog(ctx context.Context, log *model.Log) (string, error) {
	log.ID = primitive.NilObjectID
	if log.UploadedAt == nil || log.UploadedAt.IsZero() {
		now := s.now().UTC()
		log.UploadedAt = &now
	}
	return createRecord(ctx, s.store, model.KindLog, log)
}

func (s *activityService) ListLogs(ctx context.Context, placementID string) ([]model.Log, error) {
	return listRecords[model.Log](ctx, s.store, model.KindLog, byPlacement(placementID))
}

func (s *activityService) CreateAttendance(ctx context.Context, att *model.Attendance) (string, error) {
	att.ID = primitive.NilObjectID
	if att.UploadedAt == nil || att.UploadedAt.IsZero() {
		now := s.now().UTC()
		att.UploadedAt = &now
	}
	return createRecord(ctx, s.store, model.KindAttendance, att)
}

func (s *activityService) ListAttendance(ctx context.Context, placementID string) ([]model.Attendance, error) {
	return listRecords[model.Attendance](ctx, s.store, model.KindAttendance, byPlacement(placementID))
}
