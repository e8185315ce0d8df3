package model

import (
	"bytes"
	"encoding/json"
)

// Optional membedakan "field dikirim dan bernilai" dari "field tidak dikirim / null".
// Dipakai untuk update parsial: null dan absen diperlakukan sama (tidak disentuh).
type Optional[T any] struct {
	Value T
	Set   bool
}

// Some membuat Optional yang sudah di-set.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Set
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = Optional[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Optional[T]{Value: v, Set: true}
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
