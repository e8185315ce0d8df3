package database

import (
	"context"
	"errors"
	"fmt"
	"log"

	"pkl-management-backend/app/model"
	"pkl-management-backend/app/service"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes membuat index yang dibutuhkan aplikasi. Aman dijalankan berulang.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	if db == nil {
		return nil
	}

	users := db.Collection(model.CollectionFor(model.KindUser))
	name, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_email"),
	})
	if err != nil {
		return fmt.Errorf("buat index email: %w", err)
	}
	log.Printf("[SEEDER] index %s siap", name)

	for _, coll := range []model.Kind{model.KindLog, model.KindAttendance, model.KindEvaluation} {
		if _, err := db.Collection(model.CollectionFor(coll)).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "placement_id", Value: 1}},
		}); err != nil {
			return fmt.Errorf("buat index placement_id %s: %w", coll, err)
		}
	}
	return nil
}

// SeedAdmin mendaftarkan akun admin awal bila email belum terdaftar.
// Email kosong berarti seeding dilewati.
func SeedAdmin(ctx context.Context, auth service.AuthService, email, name, password string) {
	if email == "" {
		return
	}

	if _, err := auth.Login(ctx, email); err == nil {
		log.Println("[SEEDER] Admin sudah ada, skip seeding.")
		return
	} else if !errors.Is(err, service.ErrUserNotFound) {
		log.Printf("[SEEDER] Gagal cek admin: %v", err)
		return
	}

	id, err := auth.Register(ctx, &model.User{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     model.RoleAdmin,
	})
	if err != nil {
		log.Printf("[SEEDER] Gagal seed admin: %v", err)
		return
	}
	log.Printf("[SEEDER] Berhasil seed admin %s (id %s)", email, id)
}
