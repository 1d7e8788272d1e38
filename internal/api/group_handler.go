package api

import (
	"errors"
	"net/http"

	"miniblog/internal/service"
	"miniblog/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type GroupHandler struct {
	postService *service.PostService
}

func NewGroupHandler(postService *service.PostService) *GroupHandler {
	return &GroupHandler{
		postService: postService,
	}
}

// GroupPosts lists a group's posts by slug, paginated like the index.
func (h *GroupHandler) GroupPosts(c *gin.Context) {
	slug := c.Param("slug")

	group, posts, page, err := h.postService.ListGroup(slug, c.Query("page"))
	if err != nil {
		if errors.Is(err, service.ErrGroupNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "group not found"})
			return
		}
		logger.L.Error("Error listing group posts", zap.Error(err), zap.String("slug", slug))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list group posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"group": group,
		"posts": posts,
		"page":  page,
	})
}
