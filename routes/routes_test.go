package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"admin-backend/config"
	"admin-backend/controllers"
	"admin-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, config.Migrate(db))
	require.NoError(t, config.SeedDatabase(db, "teacher-pw"))

	bookingSvc := services.NewBookingService(db)
	registrationSvc := services.NewRegistrationService(db)
	roomSvc := services.NewRoomService(db)
	customerSvc := services.NewCustomerService(db)

	cfg := config.App{DefaultLocale: "th"}
	return SetupRouter(cfg, db,
		controllers.NewBookingController(bookingSvc, roomSvc, customerSvc),
		controllers.NewRegistrationController(registrationSvc),
		controllers.NewRoomController(roomSvc, services.NewRoomTypeService(db)),
		controllers.NewCustomerController(customerSvc),
	)
}

type call struct {
	method, path, body string
	headers            map[string]string
}

func do(t *testing.T, r http.Handler, c call) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var req *http.Request
	if c.body != "" {
		req = httptest.NewRequest(c.method, c.path, strings.NewReader(c.body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(c.method, c.path, nil)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body map[string]interface{}
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	}
	return w, body
}

func errorFields(body map[string]interface{}) []string {
	var out []string
	list, _ := body["errors"].([]interface{})
	for _, item := range list {
		if m, ok := item.(map[string]interface{}); ok {
			out = append(out, m["field"].(string))
		}
	}
	return out
}

func TestHealthAndMetrics(t *testing.T) {
	r := newTestRouter(t)

	w, body := do(t, r, call{method: "GET", path: "/health"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["db"])
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w, _ = do(t, r, call{method: "GET", path: "/health", headers: map[string]string{"X-Request-ID": "abc-123"}})
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))

	w, _ = do(t, r, call{method: "GET", path: "/metrics"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin_http_requests_total")
}

func TestBookingEndpoints(t *testing.T) {
	r := newTestRouter(t)

	t.Run("create answers with a Thai action result", func(t *testing.T) {
		w, body := do(t, r, call{method: "POST", path: "/api/bookings", body: `{
			"customer_id": 1, "room_id": 1,
			"check_in_date": "2026-03-01", "check_out_date": "2026-03-03",
			"total_price": 2400, "status": "confirmed"}`})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "จองห้องพักสำเร็จ", body["message"])
		assert.Equal(t, "/bookings", body["redirect"])
	})

	t.Run("check-out before check-in is 422", func(t *testing.T) {
		w, body := do(t, r, call{method: "POST", path: "/api/bookings", body: `{
			"customer_id": 1, "room_id": 1,
			"check_in_date": "2026-03-05", "check_out_date": "2026-03-01",
			"total_price": 100, "status": "confirmed"}`})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, false, body["success"])
		assert.Contains(t, errorFields(body), "check_out_date")
	})

	t.Run("wrong JSON type is a field error", func(t *testing.T) {
		w, body := do(t, r, call{method: "POST", path: "/api/bookings", body: `{"total_price": "lots"}`})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, []string{"total_price"}, errorFields(body))
	})

	t.Run("malformed body is 400", func(t *testing.T) {
		w, _ := do(t, r, call{method: "POST", path: "/api/bookings", body: `{"customer_id":`})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("list carries stats", func(t *testing.T) {
		w, body := do(t, r, call{method: "GET", path: "/api/bookings"})
		require.Equal(t, http.StatusOK, w.Code)
		data := body["data"].(map[string]interface{})
		assert.Len(t, data["bookings"], 2)
		stats := data["stats"].(map[string]interface{})
		assert.EqualValues(t, 2, stats["total"])
		assert.EqualValues(t, 2, stats["upcoming"])
	})

	t.Run("form lists customers and free rooms", func(t *testing.T) {
		w, body := do(t, r, call{method: "GET", path: "/api/bookings/form"})
		require.Equal(t, http.StatusOK, w.Code)
		data := body["data"].(map[string]interface{})
		assert.Len(t, data["customers"], 2)
		assert.Len(t, data["rooms"], 4)
	})

	t.Run("update then delete", func(t *testing.T) {
		w, body := do(t, r, call{method: "PATCH", path: "/api/bookings/1", body: `{"status": "checked_in"}`,
			headers: map[string]string{"Accept-Language": "en-US,en;q=0.9"}})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "Booking updated successfully", body["message"])

		w, body = do(t, r, call{method: "GET", path: "/api/bookings/1"})
		require.Equal(t, http.StatusOK, w.Code)
		booking := body["data"].(map[string]interface{})["booking"].(map[string]interface{})
		assert.Equal(t, "checked_in", booking["status"])

		w, _ = do(t, r, call{method: "DELETE", path: "/api/bookings/1"})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing booking is 404 in the requested language", func(t *testing.T) {
		w, body := do(t, r, call{method: "GET", path: "/api/bookings/1",
			headers: map[string]string{"Accept-Language": "en"}})
		assert.Equal(t, http.StatusNotFound, w.Code)
		errBody := body["error"].(map[string]interface{})
		assert.Equal(t, "Booking not found", errBody["message"])

		w, _ = do(t, r, call{method: "DELETE", path: "/api/bookings/1"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric id is 400", func(t *testing.T) {
		w, _ := do(t, r, call{method: "GET", path: "/api/bookings/abc"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRegistrationEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w, body := do(t, r, call{method: "POST", path: "/api/registrations",
		body:    `{"student_id": 1, "course_id": 1, "semester": "1", "academic_year": 2025, "grade": 3.75}`,
		headers: map[string]string{"Referer": "http://localhost:3000/registrations?page=2"}})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "ลงทะเบียนสำเร็จ", body["message"])
	assert.Equal(t, "/registrations?page=2", body["redirect"])

	w, body = do(t, r, call{method: "POST", path: "/api/registrations",
		body: `{"student_id": 1, "course_id": 1, "semester": "1", "academic_year": 2025, "grade": 4.1}`})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, []string{"grade"}, errorFields(body))

	w, body = do(t, r, call{method: "POST", path: "/api/registrations",
		body: `{"student_id": 2, "course_id": 2, "semester": "1", "academic_year": 2025, "grade": 1.25}`})
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("list with summary and distribution", func(t *testing.T) {
		w, body := do(t, r, call{method: "GET", path: "/api/registrations?search=cs101&field=grade&direction=asc"})
		require.Equal(t, http.StatusOK, w.Code)
		data := body["data"].(map[string]interface{})
		assert.EqualValues(t, 2, data["total_registrations"])
		assert.EqualValues(t, 2, data["total_students"])
		assert.EqualValues(t, 2.5, data["average_grade"])

		dist := data["grade_distribution"].(map[string]interface{})
		assert.EqualValues(t, 1, dist["A"])
		assert.EqualValues(t, 1, dist["D"])

		filters := data["filters"].(map[string]interface{})
		assert.Equal(t, "cs101", filters["search"])
		assert.Equal(t, "grade", filters["field"])
		assert.Equal(t, "asc", filters["direction"])

		page := data["registrations"].(map[string]interface{})
		rows := page["data"].([]interface{})
		require.Len(t, rows, 1)
		assert.Equal(t, "A", rows[0].(map[string]interface{})["letter"])
	})

	t.Run("edit form and grade update", func(t *testing.T) {
		w, body := do(t, r, call{method: "GET", path: "/api/registrations/1/edit"})
		require.Equal(t, http.StatusOK, w.Code)
		data := body["data"].(map[string]interface{})
		assert.Len(t, data["students"], 3)
		assert.Len(t, data["courses"], 2)

		w, body = do(t, r, call{method: "PUT", path: "/api/registrations/1", body: `{"grade": 2.0}`})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "/registrations", body["redirect"])

		w, body = do(t, r, call{method: "PUT", path: "/api/registrations/1", body: `{"grade": "abc"}`})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, []string{"grade"}, errorFields(body))
	})

	t.Run("stats", func(t *testing.T) {
		w, body := do(t, r, call{method: "GET", path: "/api/registrations/stats"})
		require.Equal(t, http.StatusOK, w.Code)
		data := body["data"].(map[string]interface{})
		assert.Len(t, data["course_stats"], 2)
		sem := data["semester_stats"].([]interface{})
		require.Len(t, sem, 1)
		assert.EqualValues(t, 2, sem[0].(map[string]interface{})["student_count"])
	})

	t.Run("delete then 404", func(t *testing.T) {
		w, _ := do(t, r, call{method: "DELETE", path: "/api/registrations/1"})
		assert.Equal(t, http.StatusOK, w.Code)
		w, body := do(t, r, call{method: "GET", path: "/api/registrations/1/edit"})
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "ไม่พบข้อมูลการลงทะเบียน", body["error"].(map[string]interface{})["message"])
	})
}
