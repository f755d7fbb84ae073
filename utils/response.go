package utils

import "github.com/gin-gonic/gin"

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, errCode, message string) {
	c.JSON(code, gin.H{"success": false, "error": gin.H{"code": errCode, "message": message}})
}

// JSONValidationError answers with the per-field errors of a rejected write.
func JSONValidationError(c *gin.Context, code int, message string, verr *ValidationError) {
	c.JSON(code, gin.H{
		"success": false,
		"error":   gin.H{"code": "error.validation", "message": message},
		"errors":  verr.Fields,
	})
}

// ActionResult replaces redirect-with-flash: the page layer reads Message
// and navigates to Redirect itself.
type ActionResult struct {
	Success  bool        `json:"success"`
	Message  string      `json:"message"`
	Redirect string      `json:"redirect"`
	Data     interface{} `json:"data,omitempty"`
}

func JSONAction(c *gin.Context, code int, res ActionResult) {
	res.Success = true
	c.JSON(code, res)
}
