package routes_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pkl-management-backend/app/repository"
	"pkl-management-backend/app/repository/memstore"
	"pkl-management-backend/app/service"
	"pkl-management-backend/routes"
	"pkl-management-backend/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var testSecret = []byte("test-secret")

func newRouter(store repository.DocumentStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return routes.SetupRouter(routes.Services{
		Auth:         service.NewAuthService(store),
		Master:       service.NewMasterService(store),
		Placement:    service.NewPlacementService(store),
		Evaluation:   service.NewEvaluationService(store),
		Activity:     service.NewActivityService(store),
		Notification: service.NewNotificationService(store),
		System:       service.NewSystemService(store, service.SystemConfig{}),
		Report:       service.NewReportService(repository.NewReportRepository(nil)),
	}, routes.Options{
		JWTSecret:   testSecret,
		TokenTTL:    time.Hour,
		CORSOrigins: []string{"*"},
	})
}

func do(t *testing.T, r http.Handler, method, path, body string, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json %q: %v", w.Body.String(), err)
	}
	return out
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Fatalf("unmatch: status: (actual, expected) = (%d, %d), body %s", w.Code, expected, w.Body.String())
	}
}

func TestSystemRoutes(t *testing.T) {
	r := newRouter(memstore.Down())

	t.Run("it should greet on the root path", func(t *testing.T) {
		w := do(t, r, http.MethodGet, "/", "")
		expectStatus(t, w, http.StatusOK)
		if got := decode[map[string]string](t, w)["message"]; got != "PKL Management Backend is running" {
			t.Errorf("unexpected message: %q", got)
		}
	})

	t.Run("it should list the schema collections", func(t *testing.T) {
		w := do(t, r, http.MethodGet, "/schema", "")
		expectStatus(t, w, http.StatusOK)
		got := decode[map[string][]string](t, w)["collections"]
		if len(got) != 8 || got[3] != "placement" {
			t.Errorf("unexpected collections: %v", got)
		}
	})

	t.Run("it should answer the storage probe even without a database", func(t *testing.T) {
		w := do(t, r, http.MethodGet, "/test", "")
		expectStatus(t, w, http.StatusOK)
		got := decode[map[string]any](t, w)
		if got["backend"] != "✅ Running" || got["database_url"] != nil {
			t.Errorf("unexpected probe: %v", got)
		}
	})

	t.Run("it should attach a request id", func(t *testing.T) {
		w := do(t, r, http.MethodGet, "/", "")
		if w.Header().Get("X-Request-ID") == "" {
			t.Error("missing X-Request-ID")
		}
		w = do(t, r, http.MethodGet, "/", "", "X-Request-ID", "abc-123")
		if got := w.Header().Get("X-Request-ID"); got != "abc-123" {
			t.Errorf("unmatch: (actual, expected) = (%q, %q)", got, "abc-123")
		}
	})

	t.Run("it should expose request metrics", func(t *testing.T) {
		do(t, r, http.MethodGet, "/schema", "")
		w := do(t, r, http.MethodGet, "/metrics", "")
		expectStatus(t, w, http.StatusOK)
		if !strings.Contains(w.Body.String(), "pkl_http_requests_total") {
			t.Error("request counter missing from /metrics")
		}
	})

	t.Run("it should fail data operations with 500 when storage is down", func(t *testing.T) {
		w := do(t, r, http.MethodGet, "/companies", "")
		expectStatus(t, w, http.StatusInternalServerError)
		got := decode[utils.APIResponse](t, w)
		if got.Status || got.Message != "Database not available" {
			t.Errorf("unexpected body: %+v", got)
		}
	})

	t.Run("it should fail statistics with 500 when storage is down", func(t *testing.T) {
		w := do(t, r, http.MethodGet, "/reports/placements", "")
		expectStatus(t, w, http.StatusInternalServerError)
	})
}

func TestAuthRoutes(t *testing.T) {
	r := newRouter(memstore.New())
	const body = `{"name":"Budi","email":"budi@kampus.ac.id","password":"rahasia","role":"mahasiswa"}`

	var userID string
	t.Run("it should register a new user", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/auth/register", body)
		expectStatus(t, w, http.StatusOK)
		userID = decode[map[string]string](t, w)["id"]
		if _, err := primitive.ObjectIDFromHex(userID); err != nil {
			t.Errorf("id is not an ObjectID hex: %q", userID)
		}
	})

	t.Run("it should refuse a duplicate email with 400", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/auth/register", body)
		expectStatus(t, w, http.StatusBadRequest)
		if got := decode[utils.APIResponse](t, w).Message; got != "Email sudah terdaftar" {
			t.Errorf("unexpected message: %q", got)
		}
	})

	t.Run("it should report invalid fields with 422", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/auth/register", `{"name":"X","email":"bukan-email","role":"rektor"}`)
		expectStatus(t, w, http.StatusUnprocessableEntity)
		got := decode[struct {
			Errors map[string]string `json:"errors"`
		}](t, w)
		if _, ok := got.Errors["email"]; !ok {
			t.Errorf("email not reported: %v", got.Errors)
		}
	})

	t.Run("it should reject a login for an unknown account with 401", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/auth/login", `{"email":"siapa@kampus.ac.id","password":"x"}`)
		expectStatus(t, w, http.StatusUnauthorized)
		if got := decode[utils.APIResponse](t, w).Message; got != "Akun tidak ditemukan" {
			t.Errorf("unexpected message: %q", got)
		}
	})

	var token string
	t.Run("it should log in and issue a token for the user", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/auth/login", `{"email":"budi@kampus.ac.id","password":"apa-saja"}`)
		expectStatus(t, w, http.StatusOK)
		got := decode[struct {
			Message string            `json:"message"`
			User    map[string]string `json:"user"`
			Token   string            `json:"token"`
		}](t, w)
		if got.Message != "Login berhasil" || got.User["id"] != userID || got.User["role"] != "mahasiswa" {
			t.Errorf("unexpected body: %+v", got)
		}
		if _, ok := got.User["password_hash"]; ok {
			t.Error("password hash leaked")
		}
		claims, err := utils.ValidateToken(testSecret, got.Token)
		if err != nil {
			t.Fatal(err)
		}
		if claims.UserID != userID {
			t.Errorf("unmatch: (actual, expected) = (%s, %s)", claims.UserID, userID)
		}
		token = got.Token
	})

	t.Run("it should require a login body", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/auth/login", `{"email":"budi@kampus.ac.id"}`)
		expectStatus(t, w, http.StatusUnprocessableEntity)
	})

	t.Run("it should return the token owner on /auth/me", func(t *testing.T) {
		w := do(t, r, http.MethodGet, "/auth/me", "", "Authorization", "Bearer "+token)
		expectStatus(t, w, http.StatusOK)
		got := decode[map[string]map[string]any](t, w)["user"]
		if got["email"] != "budi@kampus.ac.id" || got["is_active"] != true {
			t.Errorf("unexpected user: %v", got)
		}
	})

	t.Run("it should reject /auth/me without a token", func(t *testing.T) {
		w := do(t, r, http.MethodGet, "/auth/me", "")
		expectStatus(t, w, http.StatusUnauthorized)
	})

	t.Run("it should reject /auth/me with a token signed by another secret", func(t *testing.T) {
		forged, err := utils.GenerateToken([]byte("other"), time.Hour, userID, "admin")
		if err != nil {
			t.Fatal(err)
		}
		w := do(t, r, http.MethodGet, "/auth/me", "", "Authorization", "Bearer "+forged)
		expectStatus(t, w, http.StatusUnauthorized)
	})
}

func TestPlacementRoutes(t *testing.T) {
	r := newRouter(memstore.New())

	var id string
	t.Run("it should create a placement", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/placements", `{"student_id":"S1","company_id":"C1","period_id":"P1","notes":"awal"}`)
		expectStatus(t, w, http.StatusOK)
		id = decode[map[string]string](t, w)["id"]
	})

	t.Run("it should reject a placement without required ids", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/placements", `{"student_id":"S1"}`)
		expectStatus(t, w, http.StatusUnprocessableEntity)
	})

	t.Run("it should approve the placement", func(t *testing.T) {
		w := do(t, r, http.MethodPatch, "/placements/"+id, `{"status":"approved","notes":null}`)
		expectStatus(t, w, http.StatusOK)
		if got := decode[map[string]int](t, w)["updated"]; got != 1 {
			t.Errorf("unmatch: (actual, expected) = (%d, 1)", got)
		}
	})

	t.Run("it should show the new status and keep other fields", func(t *testing.T) {
		w := do(t, r, http.MethodGet, "/placements?student_id=S1&status=approved", "")
		expectStatus(t, w, http.StatusOK)
		got := decode[[]map[string]any](t, w)
		if len(got) != 1 {
			t.Fatalf("unexpected placements: %v", got)
		}
		if got[0]["status"] != "approved" || got[0]["notes"] != "awal" || got[0]["updated_at"] == nil {
			t.Errorf("unexpected placement: %v", got[0])
		}
	})

	t.Run("it should report zero updates for an empty patch", func(t *testing.T) {
		w := do(t, r, http.MethodPatch, "/placements/"+id, `{}`)
		expectStatus(t, w, http.StatusOK)
		if got := decode[map[string]int](t, w)["updated"]; got != 0 {
			t.Errorf("unmatch: (actual, expected) = (%d, 0)", got)
		}
	})

	t.Run("it should reject an unknown status with 422", func(t *testing.T) {
		w := do(t, r, http.MethodPatch, "/placements/"+id, `{"status":"cancelled"}`)
		expectStatus(t, w, http.StatusUnprocessableEntity)
	})

	t.Run("it should reject an empty status with 422 and keep the stored one", func(t *testing.T) {
		w := do(t, r, http.MethodPatch, "/placements/"+id, `{"status":""}`)
		expectStatus(t, w, http.StatusUnprocessableEntity)
		fields, _ := decode[utils.APIResponse](t, w).Errors.(map[string]any)
		if _, ok := fields["status"]; !ok {
			t.Errorf("status not reported: %s", w.Body.String())
		}

		w = do(t, r, http.MethodGet, "/placements?student_id=S1", "")
		expectStatus(t, w, http.StatusOK)
		got := decode[[]map[string]any](t, w)
		if len(got) != 1 || got[0]["status"] != "approved" {
			t.Errorf("unexpected placements: %v", got)
		}
	})

	t.Run("it should prefer 400 for a malformed id even when the body is invalid", func(t *testing.T) {
		w := do(t, r, http.MethodPatch, "/placements/bukan-id", `{"status":"cancelled"}`)
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("it should reject a malformed id with 400", func(t *testing.T) {
		w := do(t, r, http.MethodPatch, "/placements/bukan-id", `{"status":"approved"}`)
		expectStatus(t, w, http.StatusBadRequest)
		if got := decode[utils.APIResponse](t, w).Message; got != "ID tidak valid" {
			t.Errorf("unexpected message: %q", got)
		}
	})

	t.Run("it should answer 404 for an unknown placement", func(t *testing.T) {
		w := do(t, r, http.MethodPatch, "/placements/"+primitive.NewObjectID().Hex(), `{"status":"approved"}`)
		expectStatus(t, w, http.StatusNotFound)
		if got := decode[utils.APIResponse](t, w).Message; got != "Penempatan tidak ditemukan" {
			t.Errorf("unexpected message: %q", got)
		}
	})
}

func TestRecordRoutes(t *testing.T) {
	r := newRouter(memstore.New())

	t.Run("it should compute the evaluation total on the server", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/evaluations",
			`{"placement_id":"P1","evaluator_id":"D1","teknis":90,"disiplin":80,"soft_skills":75,"laporan":85,"total":10}`)
		expectStatus(t, w, http.StatusOK)
		got := decode[map[string]any](t, w)
		if got["total"] != 84.0 || got["id"] == "" {
			t.Errorf("unexpected body: %v", got)
		}

		w = do(t, r, http.MethodGet, "/evaluations?placement_id=P1", "")
		expectStatus(t, w, http.StatusOK)
		list := decode[[]map[string]any](t, w)
		if len(list) != 1 || list[0]["total"] != 84.0 {
			t.Errorf("unexpected evaluations: %v", list)
		}
	})

	t.Run("it should reject a score above 100", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/evaluations",
			`{"placement_id":"P1","evaluator_id":"D1","teknis":120,"disiplin":80,"soft_skills":75,"laporan":85}`)
		expectStatus(t, w, http.StatusUnprocessableEntity)
	})

	t.Run("it should create and list master data", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/companies", `{"name":"PT Maju","address":"Jl. Merdeka 1","quota":2}`)
		expectStatus(t, w, http.StatusOK)
		w = do(t, r, http.MethodPost, "/periods", `{"name":"PKL Genap","start_date":"2025-02-01","end_date":"2025-06-30"}`)
		expectStatus(t, w, http.StatusOK)

		w = do(t, r, http.MethodGet, "/companies", "")
		expectStatus(t, w, http.StatusOK)
		companies := decode[[]map[string]any](t, w)
		if len(companies) != 1 || companies[0]["name"] != "PT Maju" {
			t.Errorf("unexpected companies: %v", companies)
		}
		if positions, ok := companies[0]["positions"].([]any); !ok || len(positions) != 0 {
			t.Errorf("positions should default to an empty list: %v", companies[0]["positions"])
		}
	})

	t.Run("it should reject a period that ends before it starts", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/periods", `{"name":"X","start_date":"2025-06-30","end_date":"2025-02-01"}`)
		expectStatus(t, w, http.StatusUnprocessableEntity)
	})

	t.Run("it should stamp logs and list them by placement", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/logs", `{"placement_id":"P9","date":"2025-03-03","activities":"Rapat","hours":4}`)
		expectStatus(t, w, http.StatusOK)
		w = do(t, r, http.MethodPost, "/attendance", `{"placement_id":"P9","date":"2025-03-03"}`)
		expectStatus(t, w, http.StatusOK)

		w = do(t, r, http.MethodGet, "/logs?placement_id=P9", "")
		expectStatus(t, w, http.StatusOK)
		logs := decode[[]map[string]any](t, w)
		if len(logs) != 1 || logs[0]["uploaded_at"] == nil || logs[0]["status"] != "submitted" {
			t.Errorf("unexpected logs: %v", logs)
		}

		w = do(t, r, http.MethodGet, "/attendance?placement_id=P9", "")
		expectStatus(t, w, http.StatusOK)
		if att := decode[[]map[string]any](t, w); len(att) != 1 || att[0]["status"] != "hadir" {
			t.Errorf("unexpected attendance: %v", att)
		}
	})

	t.Run("it should filter unread notifications", func(t *testing.T) {
		for _, body := range []string{
			`{"user_id":"U1","title":"A","message":"a","is_read":true}`,
			`{"user_id":"U1","title":"B","message":"b"}`,
		} {
			expectStatus(t, do(t, r, http.MethodPost, "/notifications", body), http.StatusOK)
		}

		w := do(t, r, http.MethodGet, "/notifications?user_id=U1&unread_only=true", "")
		expectStatus(t, w, http.StatusOK)
		got := decode[[]map[string]any](t, w)
		if len(got) != 1 || got[0]["title"] != "B" {
			t.Errorf("unexpected notifications: %v", got)
		}
	})

	t.Run("it should reject a malformed unread_only flag", func(t *testing.T) {
		w := do(t, r, http.MethodGet, "/notifications?unread_only=mungkin", "")
		expectStatus(t, w, http.StatusUnprocessableEntity)
	})

	t.Run("it should reject a body that is not json", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/companies", `{"name":`)
		expectStatus(t, w, http.StatusUnprocessableEntity)
	})
}
