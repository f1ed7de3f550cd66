package response

import "github.com/gin-gonic/gin"

// Every endpoint answers with the same envelope: a success flag, an
// optional human-readable message, and operation-specific fields merged
// alongside them.

func OK(c *gin.Context, status int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}
