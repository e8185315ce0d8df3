package repository

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrStorageUnavailable dikembalikan bila koneksi database tidak pernah terbentuk.
	ErrStorageUnavailable = errors.New("database not available")
	// ErrInvalidID dikembalikan bila id bukan ObjectID hex yang valid.
	ErrInvalidID = errors.New("ID tidak valid")
	// ErrNotFound dikembalikan bila id valid tetapi dokumennya tidak ada.
	ErrNotFound = errors.New("dokumen tidak ditemukan")
	// ErrDuplicateKey dikembalikan bila unique index menolak insert.
	ErrDuplicateKey = errors.New("duplicate key")
)

// maxBackendMessage membatasi panjang pesan error dari backend yang diteruskan ke client.
const maxBackendMessage = 50

type Op string

const (
	OpRead  Op = "read"
	OpWrite Op = "write"
)

// BackendError membungkus kegagalan baca/tulis dari MongoDB.
type BackendError struct {
	Op         Op
	Collection string
	Cause      error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("gagal %s %s: %s", e.Op, e.Collection, Truncate(e.Cause.Error(), maxBackendMessage))
}

func (e *BackendError) Unwrap() error {
	return e.Cause
}

// Truncate memotong s menjadi paling banyak n rune.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
