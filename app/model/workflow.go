package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlacementStatus adalah status alur penempatan PKL.
// Tidak ada graf transisi: status apa pun boleh di-set dari status apa pun.
type PlacementStatus string

const (
	PlacementApplied   PlacementStatus = "applied"
	PlacementReview    PlacementStatus = "review"
	PlacementApproved  PlacementStatus = "approved"
	PlacementRejected  PlacementStatus = "rejected"
	PlacementOngoing   PlacementStatus = "ongoing"
	PlacementCompleted PlacementStatus = "completed"
)

var placementStatuses = []PlacementStatus{
	PlacementApplied, PlacementReview, PlacementApproved,
	PlacementRejected, PlacementOngoing, PlacementCompleted,
}

// Valid melaporkan apakah s termasuk status yang dikenal. String kosong tidak valid.
func (s PlacementStatus) Valid() bool {
	for _, known := range placementStatuses {
		if s == known {
			return true
		}
	}
	return false
}

type LogStatus string

const (
	LogSubmitted LogStatus = "submitted"
	LogApproved  LogStatus = "approved"
	LogRejected  LogStatus = "rejected"
)

type AttendanceStatus string

const (
	AttendanceHadir AttendanceStatus = "hadir"
	AttendanceIzin  AttendanceStatus = "izin"
	AttendanceSakit AttendanceStatus = "sakit"
	AttendanceAlpa  AttendanceStatus = "alpa"
)

type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
)

// Placement menghubungkan mahasiswa, perusahaan, dan periode.
type Placement struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID            string             `bson:"student_id" json:"student_id" binding:"required"` // ID user mahasiswa
	CompanyID            string             `bson:"company_id" json:"company_id" binding:"required"`
	Position             string             `bson:"position,omitempty" json:"position,omitempty"` // posisi yang dilamar/ditetapkan
	PeriodID             string             `bson:"period_id" json:"period_id" binding:"required"`
	Status               PlacementStatus    `bson:"status" json:"status" binding:"omitempty,oneof=applied review approved rejected ongoing completed"`
	Notes                string             `bson:"notes,omitempty" json:"notes,omitempty"`
	SupervisorDosenID    string             `bson:"supervisor_dosen_id,omitempty" json:"supervisor_dosen_id,omitempty"`
	SupervisorIndustriID string             `bson:"supervisor_industri_id,omitempty" json:"supervisor_industri_id,omitempty"`
	CreatedAt            time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt            *time.Time         `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

func (Placement) Kind() Kind { return KindPlacement }

func (p *Placement) ApplyDefaults() {
	if p.Status == "" {
		p.Status = PlacementApplied
	}
}

// PlacementUpdate adalah perubahan parsial pada placement.
// Field yang tidak dikirim atau bernilai null tidak disentuh.
type PlacementUpdate struct {
	Status               Optional[PlacementStatus] `json:"status"` // dicek oleh placementUpdateStatus
	Notes                Optional[string]          `json:"notes"`
	SupervisorDosenID    Optional[string]          `json:"supervisor_dosen_id"`
	SupervisorIndustriID Optional[string]          `json:"supervisor_industri_id"`
}

func (PlacementUpdate) Kind() Kind { return KindPlacement }

// Fields mengembalikan hanya field yang di-set, dengan nama field dokumen.
func (u PlacementUpdate) Fields() map[string]any {
	fields := map[string]any{}
	if v, ok := u.Status.Get(); ok {
		fields["status"] = v
	}
	if v, ok := u.Notes.Get(); ok {
		fields["notes"] = v
	}
	if v, ok := u.SupervisorDosenID.Get(); ok {
		fields["supervisor_dosen_id"] = v
	}
	if v, ok := u.SupervisorIndustriID.Get(); ok {
		fields["supervisor_industri_id"] = v
	}
	return fields
}

// Log adalah logbook harian mahasiswa.
type Log struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PlacementID      string             `bson:"placement_id" json:"placement_id" binding:"required"`
	Date             string             `bson:"date" json:"date" binding:"required,datetime=2006-01-02"`
	Activities       string             `bson:"activities" json:"activities" binding:"required"` // ringkasan aktivitas/tugas
	Hours            *float64           `bson:"hours" json:"hours" binding:"required,gte=0,lte=24"`
	EvidencePhotoURL string             `bson:"evidence_photo_url,omitempty" json:"evidence_photo_url,omitempty"`
	UploadedAt       *time.Time         `bson:"uploaded_at,omitempty" json:"uploaded_at,omitempty"`
	Status           LogStatus          `bson:"status" json:"status" binding:"omitempty,oneof=submitted approved rejected"`
	ReviewerID       string             `bson:"reviewer_id,omitempty" json:"reviewer_id,omitempty"`
	ReviewerNote     string             `bson:"reviewer_note,omitempty" json:"reviewer_note,omitempty"`
}

func (Log) Kind() Kind { return KindLog }

func (l *Log) ApplyDefaults() {
	if l.Status == "" {
		l.Status = LogSubmitted
	}
}

type Attendance struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PlacementID      string             `bson:"placement_id" json:"placement_id" binding:"required"`
	Date             string             `bson:"date" json:"date" binding:"required,datetime=2006-01-02"`
	Status           AttendanceStatus   `bson:"status" json:"status" binding:"omitempty,oneof=hadir izin sakit alpa"`
	EvidencePhotoURL string             `bson:"evidence_photo_url,omitempty" json:"evidence_photo_url,omitempty"`
	UploadedAt       *time.Time         `bson:"uploaded_at,omitempty" json:"uploaded_at,omitempty"`
}

func (Attendance) Kind() Kind { return KindAttendance }

func (a *Attendance) ApplyDefaults() {
	if a.Status == "" {
		a.Status = AttendanceHadir
	}
}

// Evaluation adalah penilaian PKL. Rubrik: teknis 40, disiplin 20, soft skills 20, laporan 20.
// Total selalu dihitung ulang di server.
type Evaluation struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PlacementID string             `bson:"placement_id" json:"placement_id" binding:"required"`
	EvaluatorID string             `bson:"evaluator_id" json:"evaluator_id" binding:"required"`
	Teknis      *float64           `bson:"teknis" json:"teknis" binding:"required,gte=0,lte=100"`
	Disiplin    *float64           `bson:"disiplin" json:"disiplin" binding:"required,gte=0,lte=100"`
	SoftSkills  *float64           `bson:"soft_skills" json:"soft_skills" binding:"required,gte=0,lte=100"`
	Laporan     *float64           `bson:"laporan" json:"laporan" binding:"required,gte=0,lte=100"`
	Total       *float64           `bson:"total" json:"total"`
	Notes       string             `bson:"notes,omitempty" json:"notes,omitempty"`
}

func (Evaluation) Kind() Kind { return KindEvaluation }

type Notification struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID  string             `bson:"user_id" json:"user_id" binding:"required"`
	Title   string             `bson:"title" json:"title" binding:"required"`
	Message string             `bson:"message" json:"message" binding:"required"`
	Type    NotificationType   `bson:"type" json:"type" binding:"omitempty,oneof=info success warning error"`
	IsRead  bool               `bson:"is_read" json:"is_read"`
}

func (Notification) Kind() Kind { return KindNotification }

func (n *Notification) ApplyDefaults() {
	if n.Type == "" {
		n.Type = NotificationInfo
	}
}
