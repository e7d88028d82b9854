package helper

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// ValidatedFromContext retrieves the normalized values the validation
// middleware stored for one input source.
func ValidatedFromContext(c *gin.Context, key string) (map[string]any, error) {
	validated, exists := c.Get(key)
	if !exists {
		return nil, errors.New("validation data missing")
	}

	values, ok := validated.(map[string]any)
	if !ok {
		return nil, errors.New("invalid validation data type")
	}

	return values, nil
}
