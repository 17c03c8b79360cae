package controller

import (
	"errors"
	"net/http"

	"quiz_app_backend/internal/service"
	"quiz_app_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// storeUploadedImage trata o campo multipart opcional "image". Devolve o
// caminho salvo ("" quando não veio arquivo) e false quando já respondeu um
// erro ao cliente.
func storeUploadedImage(ctx *gin.Context, storage *service.StorageService) (string, bool) {
	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", true
		}
		util.ValidationFailed(ctx, map[string]string{"image": "Falha ao ler o arquivo de imagem."})
		return "", false
	}

	path, err := storage.StoreImage(ctx.Request.Context(), fileHeader)
	if err != nil {
		if ve, ok := util.AsValidationError(err); ok {
			util.ValidationFailed(ctx, ve.Fields)
			return "", false
		}
		util.LogInternalError(ctx, "Erro ao armazenar a imagem.", err)
		return "", false
	}
	return path, true
}
