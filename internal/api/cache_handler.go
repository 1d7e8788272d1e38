package api

import (
	"net/http"

	"miniblog/internal/cache"
	"miniblog/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CacheHandler exposes the manual clear, the only invalidation the page
// cache has besides TTL expiry.
type CacheHandler struct {
	pageCache *cache.PageCache
}

func NewCacheHandler(pageCache *cache.PageCache) *CacheHandler {
	return &CacheHandler{
		pageCache: pageCache,
	}
}

func (h *CacheHandler) Clear(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return
	}

	if err := h.pageCache.Clear(); err != nil {
		logger.L.Error("Error clearing page cache", zap.Error(err), zap.Uint("userID", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear cache"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cache cleared"})
}
