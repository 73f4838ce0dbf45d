package services

import (
	"fmt"
	"testing"

	"kboard/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a per-test in-memory database. The shared-cache URI
// keeps every pooled connection on the same database; the test name
// keeps tests isolated from one another.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Post{}, &models.Comment{}))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user, err := NewUserService(db).Register(username, "password123", username+"-nick")
	require.NoError(t, err)
	return user
}

func createTestPost(t *testing.T, db *gorm.DB, userID uint, title, content string) *models.Post {
	t.Helper()

	post, err := NewPostService(db).CreatePost(title, content, userID)
	require.NoError(t, err)
	return post
}
