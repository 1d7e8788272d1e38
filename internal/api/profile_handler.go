package api

import (
	"errors"
	"net/http"

	"miniblog/internal/service"
	"miniblog/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProfileHandler covers author pages, the follow feed and the
// follow/unfollow actions.
type ProfileHandler struct {
	postService   *service.PostService
	followService *service.FollowService
}

func NewProfileHandler(postService *service.PostService, followService *service.FollowService) *ProfileHandler {
	return &ProfileHandler{
		postService:   postService,
		followService: followService,
	}
}

// Profile lists one author's posts. The "following" flag reflects the
// requesting user and is always false for anonymous visitors.
func (h *ProfileHandler) Profile(c *gin.Context) {
	username := c.Param("username")

	listing, err := h.postService.ListProfile(username, c.Query("page"), getViewerID(c))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		logger.L.Error("Error listing profile posts", zap.Error(err), zap.String("username", username))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list profile posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"author":          listing.Author,
		"posts":           listing.Posts,
		"page":            listing.Page,
		"posts_count":     listing.PostsCount,
		"followers_count": listing.FollowersCount,
		"following":       listing.Following,
	})
}

// Feed lists the posts of every followed author, newest first.
func (h *ProfileHandler) Feed(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return
	}

	posts, page, err := h.postService.ListFeed(userID, c.Query("page"))
	if err != nil {
		logger.L.Error("Error listing feed", zap.Error(err), zap.Uint("userID", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list feed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts": posts,
		"page":  page,
	})
}

// Follow always redirects to the target profile; self-follows and
// duplicates are silent no-ops.
func (h *ProfileHandler) Follow(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return
	}
	username := c.Param("username")

	_, err := h.followService.Follow(userID, username)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		logger.L.Error("Error following author", zap.Error(err), zap.String("username", username))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to follow"})
		return
	}

	c.Redirect(http.StatusFound, "/profile/"+username)
}

// Unfollow of a relationship that does not exist is a 404, unlike
// Follow's silence.
func (h *ProfileHandler) Unfollow(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return
	}
	username := c.Param("username")

	_, err := h.followService.Unfollow(userID, username)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case errors.Is(err, service.ErrFollowNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "follow relationship not found"})
		default:
			logger.L.Error("Error unfollowing author", zap.Error(err), zap.String("username", username))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to unfollow"})
		}
		return
	}

	c.Redirect(http.StatusFound, "/profile/"+username)
}
