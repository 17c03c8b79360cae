package util

import (
	"net/http"

	"quiz_app_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// A API devolve payloads diretos em sucesso, {"error": ...} ou
// {"message": ...} nos demais casos.

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

func Message(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context) {
	Error(c, http.StatusForbidden, "Acesso não autorizado. necéssario autorização de administrador")
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// ValidationFailed responde 422 com as mensagens por campo.
func ValidationFailed(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"error":    "Erro de validação",
		"messages": fields,
	})
}

func InternalServerError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   message,
		"message": "Ocorreu um erro inesperado. Por favor, tente novamente.",
	})
}

func LogInternalError(c *gin.Context, message string, err error) {
	logger.Log.Error("internal server error",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	InternalServerError(c, message)
}
