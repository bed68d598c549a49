package response

import "github.com/gin-gonic/gin"

// Every endpoint answers with the same flat envelope:
// {"success": bool, "message"?, "data"?, "error"?, "total"?}.

func Data(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func DataWithMessage(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func List(c *gin.Context, statusCode int, data interface{}, total int) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
		"total":   total,
	})
}

func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"message": message,
	})
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"message": message,
	})
}

// ErrorWithDetail carries the underlying diagnostic string alongside the
// human-readable message. Callers must never pass credential material.
func ErrorWithDetail(c *gin.Context, statusCode int, message string, err error) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"message": message,
		"error":   err.Error(),
	})
}
