package model

import "strings"

// Kind adalah penanda jenis record. Setiap Kind dipetakan ke tepat satu collection MongoDB.
type Kind string

const (
	KindUser         Kind = "User"
	KindCompany      Kind = "Company"
	KindPeriod       Kind = "Period"
	KindPlacement    Kind = "Placement"
	KindLog          Kind = "Log"
	KindAttendance   Kind = "Attendance"
	KindEvaluation   Kind = "Evaluation"
	KindNotification Kind = "Notification"
)

// Record diimplementasikan oleh semua struct yang disimpan sebagai dokumen.
type Record interface {
	Kind() Kind
}

// urutan deklarasi dipakai juga oleh endpoint /schema
var kinds = []Kind{
	KindUser,
	KindCompany,
	KindPeriod,
	KindPlacement,
	KindLog,
	KindAttendance,
	KindEvaluation,
	KindNotification,
}

// collections dibangun sekali saat init: nama collection = nama kind huruf kecil.
var collections = func() map[Kind]string {
	m := make(map[Kind]string, len(kinds))
	for _, k := range kinds {
		m[k] = strings.ToLower(string(k))
	}
	return m
}()

// CollectionFor mengembalikan nama collection untuk kind tertentu.
func CollectionFor(kind Kind) string {
	if name, ok := collections[kind]; ok {
		return name
	}
	return strings.ToLower(string(kind))
}

// Collections mengembalikan semua nama collection sesuai urutan deklarasi.
func Collections() []string {
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, collections[k])
	}
	return names
}
