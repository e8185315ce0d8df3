package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role pengguna sistem PKL.
type Role string

const (
	RoleAdmin              Role = "admin"
	RoleKoordinator        Role = "koordinator"
	RoleDosen              Role = "dosen"
	RolePembimbingIndustri Role = "pembimbing_industri"
	RoleMahasiswa          Role = "mahasiswa"
)

// User merepresentasikan 1 dokumen di collection "user".
// Email bersifat unik (dijaga lewat pengecekan di service + unique index).
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name" binding:"required"`                                                             // nama lengkap
	Email        string             `bson:"email" json:"email" binding:"required,email"`                                                     // email login
	Password     string             `bson:"-" json:"password,omitempty"`                                                                     // password mentah, hanya dari request register
	PasswordHash string             `bson:"password_hash,omitempty" json:"password_hash,omitempty"`                                          // hash bcrypt
	Role         Role               `bson:"role" json:"role" binding:"required,oneof=admin koordinator dosen pembimbing_industri mahasiswa"` // peran
	Phone        string             `bson:"phone,omitempty" json:"phone,omitempty"`
	AvatarURL    string             `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	IsActive     *bool              `bson:"is_active" json:"is_active"`
}

func (User) Kind() Kind { return KindUser }

// ApplyDefaults mengisi is_active = true bila tidak dikirim.
func (u *User) ApplyDefaults() {
	if u.IsActive == nil {
		active := true
		u.IsActive = &active
	}
}

// UserView adalah bentuk user yang aman dikirim ke client (tanpa hash password).
type UserView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	Phone     string `json:"phone,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
	IsActive  bool   `json:"is_active"`
}

func (u User) View() UserView {
	return UserView{
		ID:        u.ID.Hex(),
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Phone:     u.Phone,
		AvatarURL: u.AvatarURL,
		IsActive:  u.IsActive == nil || *u.IsActive,
	}
}

// Company adalah perusahaan/instansi tempat PKL.
type Company struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name" binding:"required"`
	Address       string             `bson:"address" json:"address" binding:"required"`
	City          string             `bson:"city,omitempty" json:"city,omitempty"`
	ContactPerson string             `bson:"contact_person,omitempty" json:"contact_person,omitempty"`
	ContactEmail  string             `bson:"contact_email,omitempty" json:"contact_email,omitempty" binding:"omitempty,email"`
	ContactPhone  string             `bson:"contact_phone,omitempty" json:"contact_phone,omitempty"`
	Positions     []string           `bson:"positions" json:"positions"` // daftar posisi yang ditawarkan
	Quota         int                `bson:"quota" json:"quota" binding:"gte=0"`
}

func (Company) Kind() Kind { return KindCompany }

func (c *Company) ApplyDefaults() {
	if c.Positions == nil {
		c.Positions = []string{}
	}
}

// Period adalah periode akademik PKL, misal "PKL 2025/Genap".
// Tanggal disimpan sebagai string YYYY-MM-DD.
type Period struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name" binding:"required"`
	StartDate   string             `bson:"start_date" json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate     string             `bson:"end_date" json:"end_date" binding:"required,datetime=2006-01-02"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
}

func (Period) Kind() Kind { return KindPeriod }
