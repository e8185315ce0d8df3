package service

import (
	"context"

	"pkl-management-backend/app/model"
	"pkl-management-backend/app/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MasterService mengelola data master: perusahaan dan periode PKL.
type MasterService interface {
	CreateCompany(ctx context.Context, company *model.Company) (string, error)
	ListCompanies(ctx context.Context) ([]model.Company, error)
	CreatePeriod(ctx context.Context, period *model.Period) (string, error)
	ListPeriods(ctx context.Context) ([]model.Period, error)
}

type masterService struct {
	store repository.DocumentStore
}

func NewMasterService(store repository.DocumentStore) MasterService {
	return &masterService{store: store}
}

func (s *masterService) CreateCompany(ctx context.Context, company *model.Company) (string, error) {
	company.ID = primitive.NilObjectID
	return createRecord(ctx, s.store, model.KindCompany, company)
}

func (s *masterService) ListCompanies(ctx context.Context) ([]model.Company, error) {
	return listRecords[model.Company](ctx, s.store, model.KindCompany, nil)
}

func (s *masterService) CreatePeriod(ctx context.Context, period *model.Period) (string, error) {
	period.ID = primitive.NilObjectID
	return createRecord(ctx, s.store, model.KindPeriod, period)
}

func (s *masterService) ListPeriods(ctx context.Context) ([]model.Period, error) {
	return listRecords[model.Period](ctx, s.store, model.KindPeriod, nil)
}
