package helpers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func RespondWithError(c *gin.Context, statusCode int, customMessage string) {
	c.JSON(statusCode, ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: customMessage,
	})
}

// RespondWithInternalError logs the underlying error and answers with a fixed
// message. Internal detail never reaches the response body.
func RespondWithInternalError(c *gin.Context, customMessage string, err error) {
	zap.L().Error(customMessage,
		zap.Error(err),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.String("request_id", c.GetString("request_id")),
	)
	RespondWithError(c, http.StatusInternalServerError, customMessage)
}
