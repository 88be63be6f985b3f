package utils

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// SessionKey pulls the opaque cart session key from the route. It is a
// client-generated identifier, not an authenticated user.
func SessionKey(c *gin.Context) string {
	return strings.TrimSpace(c.Param("session"))
}
