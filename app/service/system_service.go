package service

import (
	"context"

	"pkl-management-backend/app/model"
	"pkl-management-backend/app/repository"
)

// maxProbeCollections membatasi jumlah collection yang ditampilkan di /test.
const maxProbeCollections = 10

// StorageStatus adalah hasil pemeriksaan koneksi database untuk endpoint /test.
type StorageStatus struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      *string  `json:"database_url"`
	DatabaseName     *string  `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

type SystemService interface {
	Collections() []string
	Probe(ctx context.Context) StorageStatus
}

// SystemConfig memberi tahu probe apakah variabel koneksi sudah di-set.
type SystemConfig struct {
	DatabaseURLSet  bool
	DatabaseNameSet bool
}

type systemService struct {
	store repository.DocumentStore
	cfg   SystemConfig
}

func NewSystemService(store repository.DocumentStore, cfg SystemConfig) SystemService {
	return &systemService{store: store, cfg: cfg}
}

// Collections mengembalikan daftar collection yang dikenal skema.
func (s *systemService) Collections() []string {
	return model.Collections()
}

// Probe tidak pernah gagal; kegagalan database dilaporkan di field Database.
func (s *systemService) Probe(ctx context.Context) StorageStatus {
	status := StorageStatus{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}
	if !s.store.Available() {
		status.Database = "⚠️ Available but not initialized"
		return status
	}

	status.Database = "✅ Available"
	status.DatabaseURL = setFlag(s.cfg.DatabaseURLSet)
	status.DatabaseName = setFlag(s.cfg.DatabaseNameSet)
	status.ConnectionStatus = "Connected"

	names, err := s.store.CollectionNames(ctx)
	if err != nil {
		status.Database = "⚠️ Connected but Error: " + repository.Truncate(err.Error(), 50)
		return status
	}
	if len(names) > maxProbeCollections {
		names = names[:maxProbeCollections]
	}
	status.Collections = names
	status.Database = "✅ Connected & Working"
	return status
}

func setFlag(set bool) *string {
	v := "❌ Not Set"
	if set {
		v = "✅ Set"
	}
	return &v
}
