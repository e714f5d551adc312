package routers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"barmaja/auth"
	"barmaja/config"
	"barmaja/models"
	"barmaja/payment/paymenttest"
	"barmaja/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testApp struct {
	app     *fiber.App
	db      *gorm.DB
	gateway *paymenttest.Gateway
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	config.AppConfig = &config.Config{
		Env:             "test",
		JWTKey:          "test-secret",
		JWTTTL:          time.Hour,
		SaltRound:       4,
		PaymentCurrency: "usd",
		EnrollLockTTL:   time.Second,
		LogLevel:        zerolog.WarnLevel,
	}
	db := testutil.DB(t)
	gateway := &paymenttest.Gateway{}
	app := NewApp(Deps{Config: config.AppConfig, DB: db, Gateway: gateway})
	return &testApp{app: app, db: db, gateway: gateway}
}

func (a *testApp) token(t *testing.T, user *models.User) string {
	t.Helper()
	token, err := auth.GenerateJWT(config.AppConfig.JWTKey, time.Hour, user)
	require.NoError(t, err)
	return token
}

func (a *testApp) do(t *testing.T, method, path, token string, body interface{}, headers ...string) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestRegisterAndLogin(t *testing.T) {
	a := newTestApp(t)

	status, env := a.do(t, http.MethodPost, "/auth/register", "", map[string]string{
		"name":     "Layla",
		"email":    "layla@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, status, env.Message)

	status, env = a.do(t, http.MethodPost, "/auth/register", "", map[string]string{
		"name":     "Layla",
		"email":    "LAYLA@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.JSONEq(t, `{"email":"Email already registered!"}`, string(env.Data))

	status, _ = a.do(t, http.MethodPost, "/auth/login", "", map[string]string{"email": "layla@example.com", "password": "wrong-password"})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, env = a.do(t, http.MethodPost, "/auth/login", "", map[string]string{"email": "layla@example.com", "password": "secret123"})
	require.Equal(t, http.StatusOK, status)
	var login struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, models.RoleStudent, login.User.Role)
}

func TestRegisterValidation(t *testing.T) {
	a := newTestApp(t)

	status, env := a.do(t, http.MethodPost, "/auth/register", "", map[string]string{"email": "nope"})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "Validation failed!", env.Message)

	var fields map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &fields))
	assert.Equal(t, "The email field must be a valid email address.", fields["email"])
	assert.Contains(t, fields, "password")
	assert.Contains(t, fields, "name")
}

func TestAdminRoutesRequireAdmin(t *testing.T) {
	a := newTestApp(t)
	student := testutil.SeedUser(t, a.db, "student@example.com", models.RoleStudent)

	status, _ := a.do(t, http.MethodGet, "/admin/courses", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = a.do(t, http.MethodGet, "/admin/courses", a.token(t, student), nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = a.do(t, http.MethodGet, "/admin/courses", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestAdminCourseAndLessonFlow(t *testing.T) {
	a := newTestApp(t)
	admin := a.token(t, testutil.SeedUser(t, a.db, "admin@example.com", models.RoleAdmin))

	course := map[string]interface{}{
		"title_en":       "Learn JavaScript 2025",
		"title_ar":       "تعلم جافاسكربت",
		"description_en": "A complete introduction.",
		"description_ar": "مقدمة كاملة في اللغة.",
		"price":          0,
		"is_published":   true,
	}
	status, env := a.do(t, http.MethodPost, "/admin/courses", admin, course)
	require.Equal(t, http.StatusCreated, status, env.Message)
	var created models.Course
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "learn-javascript-2025", created.Slug)

	status, env = a.do(t, http.MethodPost, "/admin/courses", admin, course)
	require.Equal(t, http.StatusCreated, status)
	var second models.Course
	require.NoError(t, json.Unmarshal(env.Data, &second))
	assert.Equal(t, "learn-javascript-2025-1", second.Slug)

	lesson := func(order int) map[string]interface{} {
		return map[string]interface{}{
			"title_en":   fmt.Sprintf("Lesson %d", order),
			"title_ar":   fmt.Sprintf("الدرس %d", order),
			"content_en": "Some **markdown**",
			"content_ar": "محتوى",
			"sort_order": order,
		}
	}
	contentPath := fmt.Sprintf("/admin/courses/%d/content", created.ID)
	status, _ = a.do(t, http.MethodPost, contentPath, admin, lesson(1))
	require.Equal(t, http.StatusCreated, status)
	status, _ = a.do(t, http.MethodPost, contentPath, admin, lesson(2))
	require.Equal(t, http.StatusCreated, status)

	status, env = a.do(t, http.MethodPost, contentPath, admin, lesson(2))
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.JSONEq(t, `{"sort_order":"A lesson with this order already exists. Please choose a different order."}`, string(env.Data))

	status, env = a.do(t, http.MethodPost, contentPath, admin, lesson(0))
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.JSONEq(t, `{"sort_order":"Lesson order must be at least 1"}`, string(env.Data))

	status, env = a.do(t, http.MethodGet, fmt.Sprintf("/courses/%d/lessons", created.ID), "", nil)
	require.Equal(t, http.StatusOK, status, env.Message)
	var playback struct {
		Content     models.CourseContent   `json:"content"`
		ContentHTML string                 `json:"content_html"`
		AllLessons  []models.CourseContent `json:"all_lessons"`
		Next        *models.CourseContent  `json:"next"`
		Progress    json.RawMessage        `json:"progress"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &playback))
	assert.Equal(t, 1, playback.Content.SortOrder)
	assert.Contains(t, playback.ContentHTML, "<strong>markdown</strong>")
	assert.Len(t, playback.AllLessons, 2)
	require.NotNil(t, playback.Next)
	assert.Equal(t, 2, playback.Next.SortOrder)
	assert.Equal(t, "null", string(playback.Progress))

	status, env = a.do(t, http.MethodGet, "/admin/dashboard", admin, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), `"total_courses":2`)
	assert.Contains(t, string(env.Data), `"total_lessons":2`)
}

func TestEnrollRoutes(t *testing.T) {
	a := newTestApp(t)
	student := a.token(t, testutil.SeedUser(t, a.db, "student@example.com", models.RoleStudent))
	free := testutil.SeedCourse(t, a.db, "intro", 0, true)
	paid := testutil.SeedCourse(t, a.db, "advanced", 1999, true)

	path := fmt.Sprintf("/courses/%d/enroll", free.ID)
	status, _ := a.do(t, http.MethodPost, path, "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, env := a.do(t, http.MethodPost, path, student, map[string]string{})
	require.Equal(t, http.StatusCreated, status, env.Message)

	status, env = a.do(t, http.MethodPost, path, student, map[string]string{})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "User already enrolled in this course!", env.Message)

	status, env = a.do(t, http.MethodGet, path, student, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), `"isEnrolled":true`)

	status, _ = a.do(t, http.MethodPost, fmt.Sprintf("/courses/%d/enroll", paid.ID), student, map[string]string{"payment_method": "pm_card_visa"})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, 1, a.gateway.ChargeCount())

	status, env = a.do(t, http.MethodGet, "/user/enrollments", student, nil)
	require.Equal(t, http.StatusOK, status)
	var list []models.Enrollment
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list, 2)
}

func TestArabicErrorMessages(t *testing.T) {
	a := newTestApp(t)

	status, env := a.do(t, http.MethodGet, "/courses/999", "", nil, "Accept-Language", "ar-EG,ar;q=0.9")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "الدورة غير موجودة!", env.Message)

	status, env = a.do(t, http.MethodGet, "/courses/999?lang=en", "", nil, "Accept-Language", "ar")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Course not found!", env.Message)

	status, _ = a.do(t, http.MethodGet, "/courses/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}
