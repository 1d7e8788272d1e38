package repository

import (
	"fmt"
	"testing"

	"miniblog/internal/model"
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

// cleanupTables empties all tables in foreign-key order.
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

func createTestUser(t *testing.T, username string) *model.User {
	user := &model.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
	}
	if err := NewUserRepository().Create(user); err != nil {
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
	if err := NewGroupRepository().Create(group); err != nil {
		t.Fatalf("Failed to create test group %s: %v", slug, err)
	}
	return group
}

func createTestPost(t *testing.T, author *model.User, group *model.Group, text string) *model.Post {
	post := &model.Post{
		Text:     text,
		AuthorID: author.ID,
	}
	if group != nil {
		post.GroupID = &group.ID
	}
	if err := NewPostRepository().Create(post); err != nil {
		t.Fatalf("Failed to create test post: %v", err)
	}
	return post
}

func createTestPosts(t *testing.T, author *model.User, n int) []*model.Post {
	posts := make([]*model.Post, 0, n)
	for i := 0; i < n; i++ {
		posts = append(posts, createTestPost(t, author, nil, fmt.Sprintf("post %d", i)))
	}
	return posts
}
