package service

import (
	"context"
	"errors"
	"fmt"

	"pkl-management-backend/app/model"
	"pkl-management-backend/app/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// AuthService mendefinisikan layanan pendaftaran dan login user.
type AuthService interface {
	Register(ctx context.Context, user *model.User) (string, error)
	Login(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
}

type authService struct {
	store repository.DocumentStore
}

// NewAuthService menghubungkan AuthService dengan DocumentStore.
func NewAuthService(store repository.DocumentStore) AuthService {
	return &authService{store: store}
}

// Register menyimpan user baru. Email yang sudah terdaftar ditolak.
// Password mentah (jika dikirim) di-hash dengan bcrypt sebelum disimpan.
func (s *authService) Register(ctx context.Context, user *model.User) (string, error) {
	user.ID = primitive.NilObjectID
	user.ApplyDefaults()
	if err := model.Validate(model.KindUser, user); err != nil {
		return "", err
	}

	existing, err := s.findByEmail(ctx, user.Email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", ErrDuplicateEmail
	}

	if user.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			return "", fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hashed)
		user.Password = ""
	}

	id, err := s.store.Create(ctx, model.CollectionFor(model.KindUser), user)
	if errors.Is(err, repository.ErrDuplicateKey) {
		// pendaftaran bersamaan dengan email yang sama, ditolak oleh unique index
		return "", ErrDuplicateEmail
	}
	return id, err
}

// Login mencari user berdasarkan email. Password tidak diperiksa.
func (s *authService) Login(ctx context.Context, email string) (*model.User, error) {
	user, err := s.findByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// FindByID mengambil user berdasarkan id hex (dipakai endpoint /auth/me).
func (s *authService) FindByID(ctx context.Context, id string) (*model.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", repository.ErrInvalidID, id)
	}
	var users []model.User
	if err := s.store.Find(ctx, model.CollectionFor(model.KindUser), repository.Filter{"_id": oid}, 1, &users); err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrUserNotFound
	}
	return &users[0], nil
}

func (s *authService) findByEmail(ctx context.Context, email string) (*model.User, error) {
	var users []model.User
	if err := s.store.Find(ctx, model.CollectionFor(model.KindUser), repository.Filter{"email": email}, 1, &users); err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}
