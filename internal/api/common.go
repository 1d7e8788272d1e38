package api

import (
	"net/http"
	"strconv"
	"strings"

	"miniblog/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// getUserIDFromContext reads the authenticated user's ID set by the
// auth middleware. Responds 401 itself when absent.
func getUserIDFromContext(c *gin.Context) (uint, bool) {
	value, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		c.Abort()
		return 0, false
	}
	userID, ok := value.(uint)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid user context"})
		c.Abort()
		return 0, false
	}
	return userID, true
}

// getViewerID is the optional-auth variant: 0 means anonymous.
func getViewerID(c *gin.Context) uint {
	value, exists := c.Get("userID")
	if !exists {
		return 0
	}
	if userID, ok := value.(uint); ok {
		return userID
	}
	return 0
}

func getUserFromContext(c *gin.Context) (*model.User, bool) {
	value, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		c.Abort()
		return nil, false
	}
	user, ok := value.(*model.User)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid user context"})
		c.Abort()
		return nil, false
	}
	return user, true
}

func getPostIDFromParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return 0, false
	}
	return uint(id), true
}

// fieldErrors flattens binding failures into a field -> message map so
// clients can redisplay the form with per-field errors.
func fieldErrors(err error) gin.H {
	fields := gin.H{}
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			name := strings.ToLower(fe.Field())
			switch fe.Tag() {
			case "required":
				fields[name] = "this field is required"
			case "email":
				fields[name] = "enter a valid email address"
			case "min":
				fields[name] = "value is too short"
			case "max":
				fields[name] = "value is too long"
			default:
				fields[name] = "invalid value"
			}
		}
	} else {
		fields["_form"] = err.Error()
	}
	return fields
}
