package service

import (
	"errors"
	"testing"

	"miniblog/internal/repository"
)

func countFollows(t *testing.T, authorID uint) int64 {
	count, err := repository.NewFollowRepository().CountFollowers(authorID)
	if err != nil {
		t.Fatalf("CountFollowers() error = %v", err)
	}
	return count
}

func TestFollowService_FollowIsIdempotent(t *testing.T) {
	setupTestDB(t)
	svc := newTestFollowService()
	author := createTestUser(t, "author")
	fan := createTestUser(t, "fan")

	// Following twice leaves exactly one row and no error.
	if _, err := svc.Follow(fan.ID, "author"); err != nil {
		t.Fatalf("Follow() error = %v", err)
	}
	if _, err := svc.Follow(fan.ID, "author"); err != nil {
		t.Fatalf("second Follow() error = %v", err)
	}

	if count := countFollows(t, author.ID); count != 1 {
		t.Errorf("follow rows = %d after double follow, want 1", count)
	}
}

func TestFollowService_SelfFollowRefused(t *testing.T) {
	setupTestDB(t)
	svc := newTestFollowService()
	user := createTestUser(t, "loner")

	// Refused silently, not as an error.
	if _, err := svc.Follow(user.ID, "loner"); err != nil {
		t.Fatalf("self Follow() error = %v, want silent no-op", err)
	}

	if count := countFollows(t, user.ID); count != 0 {
		t.Errorf("follow rows = %d after self-follow, want 0", count)
	}
}

func TestFollowService_FollowUnknownUser(t *testing.T) {
	setupTestDB(t)
	svc := newTestFollowService()
	fan := createTestUser(t, "fan")

	if _, err := svc.Follow(fan.ID, "nobody"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Follow() error = %v, want ErrUserNotFound", err)
	}
}

func TestFollowService_UnfollowAsymmetry(t *testing.T) {
	setupTestDB(t)
	svc := newTestFollowService()
	author := createTestUser(t, "author")
	fan := createTestUser(t, "fan")

	// Unfollowing a relationship that never existed is an error, unlike
	// the silent duplicate follow.
	if _, err := svc.Unfollow(fan.ID, "author"); !errors.Is(err, ErrFollowNotFound) {
		t.Errorf("Unfollow() error = %v, want ErrFollowNotFound", err)
	}

	if _, err := svc.Follow(fan.ID, "author"); err != nil {
		t.Fatalf("Follow() error = %v", err)
	}
	if _, err := svc.Unfollow(fan.ID, "author"); err != nil {
		t.Fatalf("Unfollow() error = %v", err)
	}
	if count := countFollows(t, author.ID); count != 0 {
		t.Errorf("follow rows = %d after unfollow, want 0", count)
	}

	if _, err := svc.Unfollow(fan.ID, "author"); !errors.Is(err, ErrFollowNotFound) {
		t.Errorf("repeat Unfollow() error = %v, want ErrFollowNotFound", err)
	}
}

func TestFollowService_IsFollowing(t *testing.T) {
	setupTestDB(t)
	svc := newTestFollowService()
	author := createTestUser(t, "author")
	fan := createTestUser(t, "fan")

	following, err := svc.IsFollowing(fan.ID, author.ID)
	if err != nil {
		t.Fatalf("IsFollowing() error = %v", err)
	}
	if following {
		t.Error("IsFollowing() = true before follow")
	}

	if _, err := svc.Follow(fan.ID, "author"); err != nil {
		t.Fatalf("Follow() error = %v", err)
	}

	following, err = svc.IsFollowing(fan.ID, author.ID)
	if err != nil {
		t.Fatalf("IsFollowing() error = %v", err)
	}
	if !following {
		t.Error("IsFollowing() = false after follow")
	}
}
