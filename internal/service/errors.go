package service

import "errors"

// Sentinel errors the handlers translate into HTTP behavior. ErrNotAuthor
// and ErrFollowNotFound intentionally differ in severity: a non-author
// edit fails open with a redirect, a missing unfollow target is a 404.
var (
	ErrUsernameTaken  = errors.New("username already exists")
	ErrEmailTaken     = errors.New("email already exists")
	ErrBadCredentials = errors.New("invalid username or password")

	ErrUserNotFound   = errors.New("user not found")
	ErrGroupNotFound  = errors.New("group not found")
	ErrPostNotFound   = errors.New("post not found")
	ErrUnknownGroup   = errors.New("unknown group")
	ErrNotAuthor      = errors.New("requester is not the author")
	ErrFollowNotFound = errors.New("follow relationship not found")

	ErrNotAnImage = errors.New("uploaded file is not an image")
)
