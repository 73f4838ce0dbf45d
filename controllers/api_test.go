package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"kboard/controllers"
	"kboard/middleware"
	"kboard/models"
	"kboard/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Post{}, &models.Comment{}))

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	routes.SetupRoutes(r,
		controllers.NewUserController(db),
		controllers.NewAuthController(db),
		controllers.NewPostController(db),
		controllers.NewCommentController(db),
	)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
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

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerUser(t *testing.T, r *gin.Engine, username string) (token string, userID uint) {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"username": username,
		"password": "secret123",
		"nickname": username + "-nick",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token string      `json:"token"`
		Data  models.User `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Token, resp.Data.ID
}

func TestRegisterLoginFlow(t *testing.T) {
	r := setupTestRouter(t)

	token, _ := registerUser(t, r, "alice")
	require.NotEmpty(t, token)

	// duplicate username is rejected
	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"username": "alice",
		"password": "secret123",
		"nickname": "Other",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"username": "alice",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"username": "alice",
		"password": "wrong-pass",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPostEndpoints(t *testing.T) {
	r := setupTestRouter(t)
	token, _ := registerUser(t, r, "alice")

	// unauthenticated create is refused
	w := doJSON(t, r, http.MethodPost, "/api/v1/posts", "", gin.H{"title": "t", "content": "c"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/posts", token, gin.H{"title": "Hello", "content": "world"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Data models.Post `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodPost, "/api/v1/posts", token, gin.H{"title": "Foo", "content": "Hello bar"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/posts?page=0&size=10", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/posts/search?type=titleContent&keyword=Hello", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var search struct {
		Data struct {
			Items         []models.Post `json:"items"`
			TotalElements int64         `json:"total_elements"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &search))
	require.Len(t, search.Data.Items, 2)
	assert.Greater(t, search.Data.Items[0].ID, search.Data.Items[1].ID)

	w = doJSON(t, r, http.MethodGet, "/api/v1/posts/search?type=userId&keyword=abc", "", nil)
	assert.Equal(t, http.StatusOK, w.Code, "non-numeric keyword answers with an empty page")

	w = doJSON(t, r, http.MethodGet, "/api/v1/posts/search?type=banana&keyword=x", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/posts/%d", created.Data.ID), "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/v1/posts/%d", created.Data.ID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/posts/%d", created.Data.ID), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCommentEndpoints(t *testing.T) {
	r := setupTestRouter(t)
	aliceToken, _ := registerUser(t, r, "alice")
	bobToken, _ := registerUser(t, r, "bob")

	w := doJSON(t, r, http.MethodPost, "/api/v1/posts", aliceToken, gin.H{"title": "t", "content": "c"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		Data models.Post `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	postPath := fmt.Sprintf("/api/v1/posts/%d/comments", created.Data.ID)

	w = doJSON(t, r, http.MethodPost, postPath, aliceToken, gin.H{"content": "first!"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var comment struct {
		Data models.Comment `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &comment))

	w = doJSON(t, r, http.MethodGet, postPath, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// bob cannot delete alice's comment
	commentPath := fmt.Sprintf("/api/v1/comments/%d", comment.Data.ID)
	w = doJSON(t, r, http.MethodDelete, commentPath, bobToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodDelete, commentPath, aliceToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
