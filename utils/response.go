package utils

// APIResponse adalah amplop JSON untuk respon gagal.
// Contoh gagal : { "status": false, "message": "Validasi gagal", "errors": { "email": "wajib diisi" } }
type APIResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Errors  interface{} `json:"errors,omitempty"` // string atau map field -> pesan
}

// BuildResponseFailed dipakai untuk semua respon error (400, 401, 404, 422, 500).
func BuildResponseFailed(message string, err interface{}) APIResponse {
	return APIResponse{
		Status:  false,
		Message: message,
		Errors:  err,
	}
}
