package model

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

// ValidationError berisi pesan per field (nama field mengikuti nama JSON).
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+e.Fields[k])
	}
	return "validasi gagal: " + strings.Join(parts, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// tag yang sama dengan gin binding, supaya aturan hanya ditulis sekali di struct
	v.SetTagName("binding")
	RegisterValidations(v)
	return v
}

// RegisterValidations memasang aturan tambahan ke engine validator:
// nama field dari tag json, unwrap Optional, dan urutan tanggal Period.
// Dipanggil untuk validator internal dan untuk engine milik gin.
func RegisterValidations(v *validator.Validate) {
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(f reflect.Value) any {
		if o, ok := f.Interface().(Optional[string]); ok && o.Set {
			return o.Value
		}
		return nil
	}, Optional[string]{})

	v.RegisterStructValidation(periodDateOrder, Period{})
	v.RegisterStructValidation(placementUpdateStatus, PlacementUpdate{})
}

// placementUpdateStatus menolak status yang dikirim tapi tidak dikenal, termasuk "".
// Tag omitempty tidak bisa dipakai di sini karena "" akan lolos.
func placementUpdateStatus(sl validator.StructLevel) {
	u := sl.Current().Interface().(PlacementUpdate)
	status, ok := u.Status.Get()
	if !ok || status.Valid() {
		return
	}
	names := make([]string, 0, len(placementStatuses))
	for _, s := range placementStatuses {
		names = append(names, string(s))
	}
	sl.ReportError(string(status), "status", "Status", "oneof", strings.Join(names, " "))
}

// periodDateOrder memastikan start_date <= end_date.
func periodDateOrder(sl validator.StructLevel) {
	p := sl.Current().Interface().(Period)
	start, err1 := time.Parse(dateLayout, p.StartDate)
	end, err2 := time.Parse(dateLayout, p.EndDate)
	if err1 != nil || err2 != nil {
		// format salah sudah dilaporkan oleh tag datetime
		return
	}
	if end.Before(start) {
		sl.ReportError(p.EndDate, "end_date", "EndDate", "date_order", "start_date")
	}
}

// Validate memeriksa record terhadap aturan skema untuk kind yang diminta.
func Validate(kind Kind, record Record) error {
	if record == nil || reflect.ValueOf(record).Kind() == reflect.Ptr && reflect.ValueOf(record).IsNil() {
		return &ValidationError{Fields: map[string]string{"body": "wajib diisi"}}
	}
	if record.Kind() != kind {
		return &ValidationError{Fields: map[string]string{
			"kind": fmt.Sprintf("harus %s, bukan %s", kind, record.Kind()),
		}}
	}
	if err := validate.Struct(record); err != nil {
		return NewValidationError(err)
	}
	return nil
}

// NewValidationError mengubah error dari validator / binding JSON menjadi *ValidationError.
func NewValidationError(err error) error {
	if err == nil {
		return nil
	}

	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &ValidationError{Fields: map[string]string{"body": err.Error()}}
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields[fe.Field()] = describe(fe)
	}
	return &ValidationError{Fields: fields}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "wajib diisi"
	case "email":
		return "harus berupa email yang valid"
	case "oneof":
		return "harus salah satu dari: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "gte":
		return "minimal " + fe.Param()
	case "lte":
		return "maksimal " + fe.Param()
	case "datetime":
		return "harus berformat YYYY-MM-DD"
	case "date_order":
		return "tidak boleh sebelum " + fe.Param()
	default:
		return "tidak valid"
	}
}
