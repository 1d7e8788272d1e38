package api

import (
	"errors"
	"fmt"
	"net/http"

	"miniblog/internal/service"
	"miniblog/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PostHandler covers the post listing, detail and mutation endpoints.
type PostHandler struct {
	postService *service.PostService
}

func NewPostHandler(postService *service.PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

// Index lists all posts newest-first. The route is wrapped by the page
// cache middleware, so this handler only runs on a cache miss.
func (h *PostHandler) Index(c *gin.Context) {
	posts, page, err := h.postService.ListIndex(c.Query("page"))
	if err != nil {
		logger.L.Error("Error listing posts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts": posts,
		"page":  page,
	})
}

func (h *PostHandler) Detail(c *gin.Context) {
	postID, ok := getPostIDFromParam(c)
	if !ok {
		return
	}

	detail, err := h.postService.GetDetail(postID)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		logger.L.Error("Error loading post detail", zap.Error(err), zap.Uint("postID", postID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"post":              detail.Post,
		"comments":          detail.Comments,
		"author_post_count": detail.AuthorPostCount,
	})
}

// CreateForm answers the GET side of post creation with the group
// picker content.
func (h *PostHandler) CreateForm(c *gin.Context) {
	groups, err := h.postService.Groups()
	if err != nil {
		logger.L.Error("Error listing groups", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list groups"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

// EditForm returns the post for its author's edit form; a non-author
// is redirected to the detail page.
func (h *PostHandler) EditForm(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return
	}
	postID, ok := getPostIDFromParam(c)
	if !ok {
		return
	}

	post, err := h.postService.GetForEdit(userID, postID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		case errors.Is(err, service.ErrNotAuthor):
			c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d", postID))
		default:
			logger.L.Error("Error loading post for edit", zap.Error(err), zap.Uint("postID", postID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load post"})
		}
		return
	}

	groups, err := h.postService.Groups()
	if err != nil {
		logger.L.Error("Error listing groups", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list groups"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post, "groups": groups})
}

// Create persists a new post for the requester and redirects to their
// profile. Validation failures return field errors and persist nothing.
func (h *PostHandler) Create(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		return
	}

	var form service.PostForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrors(err)})
		return
	}

	// Image is optional; only a present file is stored.
	image, err := c.FormFile("image")
	if err != nil {
		image = nil
	}

	_, err = h.postService.Create(user.ID, form, image)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownGroup):
			c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"group_id": "unknown group"}})
		case errors.Is(err, service.ErrNotAnImage):
			c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"image": "upload an image file"}})
		default:
			logger.L.Error("Error creating post", zap.Error(err), zap.Uint("userID", user.ID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create post"})
		}
		return
	}

	c.Redirect(http.StatusFound, "/profile/"+user.Username)
}

// Edit changes text/group/image of the requester's own post. A
// non-author is redirected to the detail page with the post untouched;
// this is a fail-open contract, not an error.
func (h *PostHandler) Edit(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return
	}
	postID, ok := getPostIDFromParam(c)
	if !ok {
		return
	}
	detailURL := fmt.Sprintf("/posts/%d", postID)

	// The author check comes before validation: a non-author is
	// redirected no matter what they submitted.
	if _, err := h.postService.GetForEdit(userID, postID); err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		case errors.Is(err, service.ErrNotAuthor):
			c.Redirect(http.StatusFound, detailURL)
		default:
			logger.L.Error("Error loading post for edit", zap.Error(err), zap.Uint("postID", postID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to edit post"})
		}
		return
	}

	var form service.PostForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrors(err)})
		return
	}

	image, err := c.FormFile("image")
	if err != nil {
		image = nil
	}

	_, err = h.postService.Edit(userID, postID, form, image)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		case errors.Is(err, service.ErrNotAuthor):
			c.Redirect(http.StatusFound, detailURL)
		case errors.Is(err, service.ErrUnknownGroup):
			c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"group_id": "unknown group"}})
		case errors.Is(err, service.ErrNotAnImage):
			c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"image": "upload an image file"}})
		default:
			logger.L.Error("Error editing post", zap.Error(err), zap.Uint("postID", postID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to edit post"})
		}
		return
	}

	c.Redirect(http.StatusFound, detailURL)
}

func (h *PostHandler) Delete(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return
	}
	postID, ok := getPostIDFromParam(c)
	if !ok {
		return
	}

	err := h.postService.Delete(userID, postID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		case errors.Is(err, service.ErrNotAuthor):
			c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d", postID))
		default:
			logger.L.Error("Error deleting post", zap.Error(err), zap.Uint("postID", postID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete post"})
		}
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// AddComment attaches a comment to a post. An invalid submission is
// silently dropped; either way the requester lands back on the detail
// page.
func (h *PostHandler) AddComment(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return
	}
	postID, ok := getPostIDFromParam(c)
	if !ok {
		return
	}
	detailURL := fmt.Sprintf("/posts/%d", postID)

	var form service.CommentForm
	if err := c.ShouldBind(&form); err != nil {
		// Dropped without surfacing an error.
		c.Redirect(http.StatusFound, detailURL)
		return
	}

	_, err := h.postService.AddComment(userID, postID, form)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		logger.L.Error("Error adding comment", zap.Error(err), zap.Uint("postID", postID))
	}

	c.Redirect(http.StatusFound, detailURL)
}
