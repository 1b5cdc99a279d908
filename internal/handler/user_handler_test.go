package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/smartcampus-id/campus-backend/internal/model"
	"github.com/smartcampus-id/campus-backend/internal/repository"
	"github.com/smartcampus-id/campus-backend/internal/service"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Course{}))

	h := NewUserHandler(service.NewUserService(repository.NewUserRepository(db)))

	router := gin.New()
	users := router.Group("/api/users")
	{
		users.GET("/:id", h.GetUserByID)
		users.POST("", h.CreateUser)
		users.PUT("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)
		users.PUT("/:id/activate", h.ActivateUser)
	}
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func validUserBody() map[string]any {
	return map[string]any{
		"username":   "jdoe",
		"email":      "j@x.edu",
		"first_name": "J",
		"last_name":  "Doe",
		"role":       "STUDENT",
	}
}

func TestCreateUserReturns201(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/users", validUserBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	var created model.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEqual(t, uuid.Nil, created.ID)
	require.NotNil(t, created.StudentID)
	assert.Equal(t, "STU000001", *created.StudentID)
}

func TestCreateUserValidationFailure(t *testing.T) {
	router := newTestRouter(t)

	body := validUserBody()
	body["username"] = "ab" // below the 3 character minimum
	rec := doJSON(t, router, http.MethodPost, "/api/users", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateUserUnknownRole(t *testing.T) {
	router := newTestRouter(t)

	body := validUserBody()
	body["role"] = "JANITOR"
	rec := doJSON(t, router, http.MethodPost, "/api/users", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateDuplicateUserReturns409(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/users", validUserBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/users", validUserBody())
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetMissingUserReturns404(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/users/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInvalidUUIDReturns400(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/users/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteMissingUserReturns404(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodDelete, "/api/users/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateAndActivateFlow(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/users", validUserBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	var created model.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(t, router, http.MethodPut, "/api/users/"+created.ID.String(), map[string]any{
		"department": "CS",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated model.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	require.NotNil(t, updated.Department)
	assert.Equal(t, "CS", *updated.Department)
	assert.Equal(t, "jdoe", updated.Username)

	rec = doJSON(t, router, http.MethodPut, "/api/users/"+created.ID.String()+"/activate", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var activated model.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &activated))
	assert.True(t, activated.IsActive)
}
