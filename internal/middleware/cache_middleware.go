package middleware

import (
	"bytes"
	"net/http"

	"miniblog/internal/cache"
	"miniblog/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type cachedWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *cachedWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// CachePage serves GET responses from the page cache keyed by the full
// request URL, storing successful responses on miss. Cache failures
// fall through to the handler; a broken cache must not break listings.
func CachePage(pageCache *cache.PageCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := c.Request.URL.RequestURI()

		body, hit, err := pageCache.Get(key)
		if err != nil {
			logger.L.Warn("Page cache read failed", zap.String("key", key), zap.Error(err))
		}
		if hit {
			c.Data(http.StatusOK, "application/json; charset=utf-8", body)
			c.Abort()
			return
		}

		w := &cachedWriter{ResponseWriter: c.Writer}
		c.Writer = w
		c.Next()

		if c.Writer.Status() == http.StatusOK {
			if err := pageCache.Set(key, w.body.Bytes()); err != nil {
				logger.L.Warn("Page cache write failed", zap.String("key", key), zap.Error(err))
			}
		}
	}
}
