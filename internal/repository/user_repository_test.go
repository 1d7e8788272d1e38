package repository

import (
	"testing"

	"miniblog/internal/model"
)

func TestUserRepository_FindByUsername(t *testing.T) {
	setupTestDB(t)
	repo := NewUserRepository()

	user, err := repo.FindByUsername("nonexistent")
	if err != nil {
		t.Errorf("FindByUsername() error = %v", err)
	}
	if user != nil {
		t.Error("Expected nil for non-existent user, got user")
	}

	created := createTestUser(t, "finduser")

	found, err := repo.FindByUsername("finduser")
	if err != nil {
		t.Errorf("FindByUsername() error = %v", err)
	}
	if found == nil {
		t.Fatal("Expected to find user, got nil")
	}
	if found.ID != created.ID {
		t.Errorf("Expected ID %v, got %v", created.ID, found.ID)
	}
}

// Deleting a user takes their posts, comments and both directions of
// follow rows with them.
func TestUserRepository_DeleteCascades(t *testing.T) {
	setupTestDB(t)
	repo := NewUserRepository()
	postRepo := NewPostRepository()
	commentRepo := NewCommentRepository()
	followRepo := NewFollowRepository()

	doomed := createTestUser(t, "doomed")
	other := createTestUser(t, "other")

	post := createTestPost(t, doomed, nil, "owned post")
	otherPost := createTestPost(t, other, nil, "someone else's post")

	if err := commentRepo.Create(&model.Comment{Text: "mine", PostID: otherPost.ID, AuthorID: doomed.ID}); err != nil {
		t.Fatalf("Failed to create comment: %v", err)
	}
	if err := followRepo.Create(&model.Follow{FollowerID: doomed.ID, AuthorID: other.ID}); err != nil {
		t.Fatalf("Failed to create follow: %v", err)
	}
	if err := followRepo.Create(&model.Follow{FollowerID: other.ID, AuthorID: doomed.ID}); err != nil {
		t.Fatalf("Failed to create follow: %v", err)
	}

	if err := repo.Delete(doomed.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	gone, err := repo.FindByID(doomed.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if gone != nil {
		t.Error("user still present after Delete()")
	}

	orphan, err := postRepo.FindByID(post.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if orphan != nil {
		t.Error("owned post survived user deletion")
	}

	comments, err := commentRepo.FindByPostID(otherPost.ID)
	if err != nil {
		t.Fatalf("FindByPostID() error = %v", err)
	}
	if len(comments) != 0 {
		t.Errorf("%d comments survived their author's deletion, want 0", len(comments))
	}

	asFollower, err := followRepo.Exists(doomed.ID, other.ID)
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	asAuthor, err := followRepo.Exists(other.ID, doomed.ID)
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if asFollower || asAuthor {
		t.Errorf("follow rows survived user deletion: follower=%v author=%v", asFollower, asAuthor)
	}

	// The other user and their post are untouched.
	survivor, err := postRepo.FindByID(otherPost.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if survivor == nil {
		t.Error("unrelated post deleted together with the user")
	}
}
