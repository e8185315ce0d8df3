package service

import (
	"context"
	"math"

	"pkl-management-backend/app/repository"
)

// ReportService menyediakan statistik PKL untuk dashboard koordinator.
type ReportService interface {
	PlacementStatistics(ctx context.Context, filter repository.ReportFilter) (*repository.PlacementReport, error)
}

type reportService struct {
	reportRepo repository.ReportRepository
}

func NewReportService(reportRepo repository.ReportRepository) ReportService {
	return &reportService{reportRepo: reportRepo}
}

// PlacementStatistics meneruskan filter ke repository dan membulatkan rata-rata nilai ke 2 desimal.
func (s *reportService) PlacementStatistics(ctx context.Context, filter repository.ReportFilter) (*repository.PlacementReport, error) {
	report, err := s.reportRepo.PlacementStatistics(ctx, filter)
	if err != nil {
		return nil, err
	}
	if report.AverageTotal != nil {
		avg := math.Round(*report.AverageTotal*100) / 100
		report.AverageTotal = &avg
	}
	return report, nil
}
