package service

import (
	"testing"

	"miniblog/internal/model"
	"miniblog/internal/repository"
	"miniblog/pkg/config"
	"miniblog/pkg/db"

	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) {
	if err := config.InitTest(); err != nil {
		t.Fatalf("Failed to initialize config: %v", err)
	}

	if err := db.InitDB(); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	cleanupTables(t)
}

func cleanupTables(t *testing.T) {
	session := db.DB.Session(&gorm.Session{AllowGlobalUpdate: true})
	for _, m := range []interface{}{
		&model.Comment{}, &model.Follow{}, &model.Post{}, &model.Group{}, &model.User{},
	} {
		if err := session.Unscoped().Delete(m).Error; err != nil {
			t.Logf("Failed to cleanup table for %T: %v", m, err)
		}
	}
}

func newTestPostService(t *testing.T) *PostService {
	images, err := NewImageService()
	if err != nil {
		t.Fatalf("Failed to initialize image service: %v", err)
	}
	return NewPostService(
		repository.NewPostRepository(),
		repository.NewGroupRepository(),
		repository.NewUserRepository(),
		repository.NewCommentRepository(),
		repository.NewFollowRepository(),
		images,
	)
}

func newTestFollowService() *FollowService {
	return NewFollowService(repository.NewFollowRepository(), repository.NewUserRepository())
}

func createTestUser(t *testing.T, username string) *model.User {
	user := &model.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
	}
	if err := repository.NewUserRepository().Create(user); err != nil {
		t.Fatalf("Failed to create test user %s: %v", username, err)
	}
	return user
}

func createTestGroup(t *testing.T, slug string) *model.Group {
	group := &model.Group{
		Title:       "Group " + slug,
		Slug:        slug,
		Description: "test group",
	}
	if err := repository.NewGroupRepository().Create(group); err != nil {
		t.Fatalf("Failed to create test group %s: %v", slug, err)
	}
	return group
}
