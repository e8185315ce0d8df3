package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Database memegang koneksi MongoDB selama proses hidup.
type Database struct {
	Client *mongo.Client
	Mongo  *mongo.Database
}

// InitDB membuka koneksi ke MongoDB dan memastikan server bisa di-ping.
func InitDB(ctx context.Context, uri, name string, timeout time.Duration) (*Database, error) {
	if uri == "" {
		return nil, errors.New("DATABASE_URL belum diset")
	}
	if name == "" {
		return nil, errors.New("DATABASE_NAME belum diset")
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("gagal koneksi ke mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("gagal ping mongo: %w", err)
	}

	log.Printf("Berhasil terhubung ke MongoDB (database: %s)", name)

	return &Database{
		Client: client,
		Mongo:  client.Database(name),
	}, nil
}

// DB mengembalikan handle database, nil bila koneksi tidak pernah dibuat.
func (d *Database) DB() *mongo.Database {
	if d == nil {
		return nil
	}
	return d.Mongo
}

// Close memutus koneksi. Aman dipanggil pada nil.
func (d *Database) Close(ctx context.Context) error {
	if d == nil || d.Client == nil {
		return nil
	}
	return d.Client.Disconnect(ctx)
}
